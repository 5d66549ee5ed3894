// Package microphone opens the default input device through PortAudio.
package microphone

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/maastricht-university/gesture-pipeline/audio"
)

type Stream struct {
	s   *portaudio.Stream
	buf []int16
}

// Open starts a mono int16 stream on the default input device.
// It satisfies audio.Opener.
func Open(sampleRate, chunkSize int) (audio.Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	buf := make([]int16, chunkSize)
	s, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), chunkSize, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio open: %w", err)
	}
	if err := s.Start(); err != nil {
		s.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio start: %w", err)
	}
	return &Stream{s: s, buf: buf}, nil
}

// Read blocks for one buffer. Input overflow is ignored, matching a
// recorder that keeps reading whatever the device delivers.
func (m *Stream) Read(out []int16) error {
	if err := m.s.Read(); err != nil && err != portaudio.InputOverflowed {
		return err
	}
	copy(out, m.buf)
	return nil
}

func (m *Stream) Close() error {
	defer portaudio.Terminate()
	if err := m.s.Stop(); err != nil {
		m.s.Close()
		return err
	}
	return m.s.Close()
}
