//go:build !test

package audio

import "math"

// Tone is a short decaying sine whose pitch glides by Bend over its length.
type Tone struct {
	Freq   float64
	Millis int
	Bend   float64 // end frequency = Freq*Bend; 0 or 1 keeps the pitch
}

func (t Tone) NewVoice(sampleRate int) Voice {
	bend := t.Bend
	if bend == 0 {
		bend = 1
	}
	return &toneVoice{
		n:    sampleRate * t.Millis / 1000,
		sr:   float64(sampleRate),
		from: t.Freq,
		to:   t.Freq * bend,
	}
}

type toneVoice struct {
	i, n     int
	sr       float64
	from, to float64
	phase    float64
}

func (v *toneVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	t := float64(v.i) / float64(v.n)
	freq := v.from + (v.to-v.from)*t
	v.phase += 2 * math.Pi * freq / v.sr
	env := math.Exp(-4 * t)
	v.i++
	return 0.4 * math.Sin(v.phase) * env, false
}

// Arpeggio plays its frequencies one after another.
type Arpeggio struct {
	Freqs      []float64
	StepMillis int
}

func (a Arpeggio) NewVoice(sampleRate int) Voice {
	voices := make([]Voice, len(a.Freqs))
	for i, f := range a.Freqs {
		voices[i] = Tone{Freq: f, Millis: a.StepMillis}.NewVoice(sampleRate)
	}
	return &seqVoice{voices: voices}
}

type seqVoice struct {
	voices []Voice
}

func (s *seqVoice) Sample() (float64, bool) {
	for len(s.voices) > 0 {
		v, done := s.voices[0].Sample()
		if !done {
			return v, false
		}
		s.voices = s.voices[1:]
	}
	return 0, true
}
