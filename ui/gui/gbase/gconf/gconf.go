package gconf

import (
	"encoding/json"
	"fmt"
	"tilechess/src/base"
	"tilechess/ui/gui/gbase/gos"
)

const DefaultFile = "tilechess.json"

type Config struct {
	Theme   string  `json:"theme"`    // light/dark
	WindowW int     `json:"window_w"` //
	WindowH int     `json:"window_h"` //
	Pitch   float64 `json:"pitch"`    // world units per tile
	Sound   bool    `json:"sound"`    // selection click
	Debug   bool    `json:"debug"`    // TPS overlay
}

func DefaultConfig() Config {
	return Config{
		Theme:   "light",
		WindowW: 720,
		WindowH: 640,
		Pitch:   1,
		Sound:   true,
		Debug:   false,
	}
}

type GUIConfigWorker struct {
	path   string
	Config Config
}

// NewGUIConfigWorker loads path, falling back to defaults when it is missing.
func NewGUIConfigWorker(path string) (*GUIConfigWorker, error) {
	if path == "" {
		path = DefaultFile
	}
	w := &GUIConfigWorker{path: path, Config: DefaultConfig()}

	fi, err := gos.Stat(path)
	if gos.IsNotExist(err) {
		return w, nil
	} else if err != nil {
		return nil, err
	}
	if fi.IsDir {
		return nil, fmt.Errorf("config %s is a directory", path)
	}

	conf, err := gos.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	var c Config
	if err := json.NewDecoder(conf).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)
	w.Config = c
	return w, nil
}

func (w *GUIConfigWorker) Save() error {
	jsonData, err := json.MarshalIndent(w.Config, "", "    ")
	if err != nil {
		return err
	}
	return gos.WriteFile(w.path, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
	if !base.ValidPitch(c.Pitch) {
		c.Pitch = def.Pitch
	}
}
