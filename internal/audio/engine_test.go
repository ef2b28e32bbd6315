//go:build !test

package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstNonZero(buf []byte, from int) int {
	for i := from; i < len(buf)/2; i++ {
		v := int16(buf[2*i]) | int16(buf[2*i+1])<<8
		if v != 0 {
			return i
		}
	}
	return -1
}

func TestMixerPlaysSequentialVoices(t *testing.T) {
	m := &mixer{}
	m.Schedule(Tone{Freq: 440, Millis: 50}.NewVoice(sampleRate), 0)
	m.Schedule(Tone{Freq: 440, Millis: 50}.NewVoice(sampleRate), sampleRate/4)
	buf := make([]byte, sampleRate)
	m.Read(buf)

	first := firstNonZero(buf, 0)
	second := firstNonZero(buf, sampleRate/4)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, sampleRate/10)
	assert.Empty(t, m.voices, "finished voices are removed")
}

func TestVoiceStartsWithin50ms(t *testing.T) {
	m := &mixer{}
	m.Schedule(Tone{Freq: 660, Millis: 60, Bend: 1.2}.NewVoice(sampleRate), 0)
	buf := make([]byte, sampleRate/10*2) // 0.1s of 16-bit mono
	m.Read(buf)
	first := firstNonZero(buf, 0)
	require.NotEqual(t, -1, first, "no audio produced")
	delay := time.Duration(first) * time.Second / sampleRate
	assert.LessOrEqual(t, delay, 50*time.Millisecond)
}

func TestArpeggioLength(t *testing.T) {
	v := Arpeggio{Freqs: []float64{440, 550}, StepMillis: 10}.NewVoice(1000)
	n := 0
	for {
		_, done := v.Sample()
		if done {
			break
		}
		n++
	}
	assert.Equal(t, 20, n)
}

func TestBuiltInCuesRegistered(t *testing.T) {
	ResetInstruments()
	assert.ElementsMatch(t, []string{CuePick, CueDrop, CueRevert, CueWin}, Instruments())
}

func TestPlayDisabledNeverOpensDevice(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)
	Play(CueWin)
	assert.Nil(t, ctx)
}
