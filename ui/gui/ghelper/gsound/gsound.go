// Package gsound synthesises the short click played when a piece is selected.
package gsound

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate = 44100
	ClickFreq  = 880.0
	ClickMs    = 60
)

// Tone renders a sine tone as 16-bit little-endian stereo PCM with a linear fade out.
func Tone(sampleRate int, freq float64, ms int) []byte {
	n := sampleRate * ms / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 0.3 * (1 - float64(i)/float64(n))
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
