//go:build !test

package audio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate          = 44100
	bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

var (
	ctx     *oto.Context
	once    sync.Once
	mix     *mixer
	enabled = true
	onError func(error)

	instruments = map[string]Instrument{}
	instMu      sync.RWMutex
)

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// Instrument constructs a new Voice instance when triggered.
type Instrument interface {
	NewVoice(sampleRate int) Voice
}

// Register makes an instrument available for playback by ID.
func Register(id string, inst Instrument) {
	instMu.Lock()
	instruments[id] = inst
	instMu.Unlock()
}

func init() {
	ResetInstruments()
}

// SetEnabled turns playback on or off. Disabled audio never opens a device.
func SetEnabled(on bool) { enabled = on }

// OnError registers a callback for the device initialisation failure.
func OnError(f func(error)) { onError = f }

func initContext() {
	c, err := platformInitContext(sampleRate)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	ctx = c
	mix = newMixer(c)
}

// Play starts the instrument registered as id. It never blocks the caller;
// a missing device silently drops the sound.
func Play(id string) {
	if !enabled {
		return
	}
	instMu.RLock()
	inst, ok := instruments[id]
	instMu.RUnlock()
	if !ok {
		return
	}
	once.Do(initContext)
	if ctx == nil {
		return
	}
	mix.Schedule(inst.NewVoice(sampleRate), 0)
}

// ResetInstruments restores the built-in cue set.
func ResetInstruments() {
	instMu.Lock()
	instruments = map[string]Instrument{
		CuePick:   Tone{Freq: 660, Millis: 60, Bend: 1.2},
		CueDrop:   Tone{Freq: 440, Millis: 80, Bend: 0.8},
		CueRevert: Tone{Freq: 220, Millis: 140, Bend: 0.7},
		CueWin:    Arpeggio{Freqs: []float64{523.25, 659.25, 783.99, 1046.5}, StepMillis: 110},
	}
	instMu.Unlock()
}

// Instruments returns the registered IDs.
func Instruments() []string {
	instMu.RLock()
	defer instMu.RUnlock()
	ids := make([]string, 0, len(instruments))
	for id := range instruments {
		ids = append(ids, id)
	}
	return ids
}

// mixer mixes multiple voices into a single PCM stream.
type mixer struct {
	mu     sync.Mutex
	voices []*voiceState
	pos    int
	player *oto.Player
}

type voiceState struct {
	start int
	v     Voice
}

func newMixer(c *oto.Context) *mixer {
	m := &mixer{}
	p := c.NewPlayer(m)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	m.player = p
	return m
}

// Schedule adds a voice to start after delaySamples have elapsed.
func (m *mixer) Schedule(v Voice, delaySamples int) {
	m.mu.Lock()
	m.voices = append(m.voices, &voiceState{start: m.pos + delaySamples, v: v})
	m.mu.Unlock()
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	for i := 0; i < samples; i++ {
		var sum float64
		m.mu.Lock()
		for idx := 0; idx < len(m.voices); idx++ {
			vs := m.voices[idx]
			if m.pos >= vs.start {
				val, done := vs.v.Sample()
				sum += val
				if done {
					m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
					idx--
				}
			}
		}
		m.mu.Unlock()
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
		m.pos++
	}
	return len(p), nil
}
