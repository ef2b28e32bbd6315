//go:build !test

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

func platformInitContext(sampleRate int) (*oto.Context, error) {
	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	// Don't hold up the first frame waiting for the device.
	go func() { <-ready }()
	return c, nil
}
