package ghelper

import (
	"tilechess/ui/gui/ghelper/gsound"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

type SoundPlayer struct {
	enabled bool
	click   *audio.Player
}

// NewSoundPlayer returns a silent player when disabled. Only one audio
// context may exist per process.
func NewSoundPlayer(enabled bool) *SoundPlayer {
	p := &SoundPlayer{enabled: enabled}
	if !enabled {
		return p
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(gsound.SampleRate)
	}
	p.click = ctx.NewPlayerFromBytes(gsound.Tone(ctx.SampleRate(), gsound.ClickFreq, gsound.ClickMs))
	return p
}

func (p *SoundPlayer) Click() {
	if !p.enabled || p.click == nil {
		return
	}
	if err := p.click.SetPosition(0); err != nil {
		return
	}
	p.click.Play()
}
