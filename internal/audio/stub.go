//go:build test

package audio

type Voice interface{}

type Instrument interface{}

var played []string

func Register(id string, inst Instrument) {}

// Play records the cue instead of opening an audio device.
func Play(id string) { played = append(played, id) }

// Played returns and clears the cues recorded by Play.
func Played() []string {
	p := played
	played = nil
	return p
}

func SetEnabled(on bool) {}

func OnError(f func(error)) {}

func ResetInstruments() {}

func Instruments() []string { return []string{CuePick, CueDrop, CueRevert, CueWin} }
