//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"github.com/sqweek/dialog"
)

// ShowError blocks until the user dismisses a native error box.
func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}

func ShowInfo(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}
