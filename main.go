package main

import (
	"fmt"
	"os"
	"tilechess/ui"
)

func main() {
	if err := ui.RunTileChess(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
