package ui

import (
	"context"
	"fmt"
	"os"
	"tilechess/src"
	"tilechess/src/logx"
	"tilechess/src/view"
	clic "tilechess/ui/cli"
	"tilechess/ui/gui"
	"tilechess/ui/gui/gbase/gconf"
	"tilechess/ui/gui/ghelper/gdialog"
	"tilechess/ui/tui"

	"github.com/urfave/cli/v3"
)

const logfile string = "tilechess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func openLog(c *cli.Command) (*os.File, error) {
	name := c.String("log")
	if name == "" {
		name = logfile
	}
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// newSession builds the canvas and lays out the position asked for on the command line.
func newSession(c *cli.Command, logger logx.Logger, pitch float64) (*src.Session, *view.Canvas, error) {
	canvas := view.NewCanvas()
	s := src.NewSession(canvas, logger)
	var err error
	if fen := c.String("fen"); fen != "" {
		err = s.CreateFromFEN(fen, pitch)
	} else {
		err = s.CreateClassic(pitch)
	}
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	logger.Infof("start game %s", s.Name())
	return s, canvas, nil
}

func closeSession(s *src.Session) {
	if err := s.Close(); err != nil {
		fmt.Printf("error close game: %v\n", err)
	}
}

func RunCLI(c *cli.Command) error {
	file, err := openLog(c)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()

	s, canvas, err := newSession(c, GetLogger(file, c), c.Float("pitch"))
	if err != nil {
		return err
	}
	defer closeSession(s)

	clic.EnableANSI()
	cl := clic.NewCLI(s, canvas)
	if c.Bool("line") {
		return cl.RunLineMode()
	}
	return cl.Run()
}

func RunTUI(c *cli.Command) error {
	file, err := openLog(c)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()

	logger := GetLogger(file, c)
	s, canvas, err := newSession(c, logger, c.Float("pitch"))
	if err != nil {
		return err
	}
	defer closeSession(s)
	return tui.NewTUI(s, canvas, logger).Run()
}

func RunGUI(c *cli.Command) error {
	file, err := openLog(c)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()

	logger := GetLogger(file, c)
	cw, err := gconf.NewGUIConfigWorker(c.String("config"))
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return err
	}
	if c.IsSet("debug") {
		cw.Config.Debug = c.Bool("debug")
	}
	pitch := cw.Config.Pitch
	if c.IsSet("pitch") {
		pitch = c.Float("pitch")
	}

	s, canvas, err := newSession(c, logger, pitch)
	if err != nil {
		return err
	}
	g := gui.NewGUI(s, canvas, cw, logger)
	defer func() { closeSession(g.Session()) }()
	return g.Run()
}

// commonFlags builds fresh flag values for one command. Root flags are local
// so they do not clash with the same names on subcommands.
func commonFlags(local bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "fen",
			Usage: "start from a FEN placement instead of the standard layout",
			Local: local,
		},
		&cli.FloatFlag{
			Name:  "pitch",
			Usage: "world units between tile centres",
			Value: 1,
			Local: local,
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
			Local:   local,
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "logger level (debug, info, warn, error)",
			Value:   "info",
			Local:   local,
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
			Local:   local,
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "log file",
			Value: logfile,
			Local: local,
		},
	}
}

func guiFlags(local bool) []cli.Flag {
	return append(commonFlags(local), &cli.StringFlag{
		Name:  "config",
		Usage: "GUI config file",
		Value: gconf.DefaultFile,
		Local: local,
	})
}

func RunTileChess() error {
	linef := &cli.BoolFlag{
		Name:  "line",
		Usage: "read commands line by line instead of raw keys",
	}

	return (&cli.Command{
		Name:  "tilechess",
		Usage: "click-to-select chess board",
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "ANSI board in the terminal",
				Flags: append(commonFlags(false), linef),
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error tilechess: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "tui",
				Usage: "mouse driven terminal board",
				Flags: commonFlags(false),
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunTUI(c); err != nil {
						fmt.Printf("error TUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Usage: "window with the board",
				Flags: guiFlags(false),
				Action: func(ctx context.Context, c *cli.Command) error {
					return runGUIReporting(c)
				},
			},
		},
		Flags: guiFlags(true),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUIReporting(c)
		},
	}).Run(context.Background(), os.Args)
}

func runGUIReporting(c *cli.Command) error {
	if err := RunGUI(c); err != nil {
		fmt.Printf("error GUI: %v\n", err)
		gdialog.ShowError("TileChess", err.Error())
	}
	return nil
}
