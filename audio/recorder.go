// Package audio records fixed-length mono 16-bit PCM clips into WAV files.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

const (
	SampleRate = 16000
	Channels   = 1
	BitDepth   = 16
	ChunkSize  = 1024
)

// ErrDeviceUnavailable means the capture device could not be opened.
var ErrDeviceUnavailable = errors.New("audio: input device unavailable")

// Stream is an open mono int16 capture stream.
type Stream interface {
	// Read fills buf completely.
	Read(buf []int16) error
	Close() error
}

type Opener func(sampleRate, chunkSize int) (Stream, error)

type Recorder struct {
	Open       Opener
	Dir        string
	Name       string
	SampleRate int
	ChunkSize  int
	Log        logrus.FieldLogger
}

// ChunkCount is the number of chunks read for a clip of the given seconds.
func ChunkCount(sampleRate, chunkSize, seconds int) int {
	return int(float64(sampleRate) / float64(chunkSize) * float64(seconds))
}

func (r *Recorder) defaults() {
	if r.SampleRate <= 0 {
		r.SampleRate = SampleRate
	}
	if r.ChunkSize <= 0 {
		r.ChunkSize = ChunkSize
	}
	if r.Name == "" {
		r.Name = "temp.wav"
	}
	if r.Log == nil {
		r.Log = logrus.StandardLogger()
	}
}

// Record captures seconds of audio and writes it as a WAV file, returning its path.
func (r *Recorder) Record(ctx context.Context, seconds int) (string, error) {
	r.defaults()
	if r.Open == nil {
		return "", ErrDeviceUnavailable
	}
	stream, err := r.Open(r.SampleRate, r.ChunkSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	n := ChunkCount(r.SampleRate, r.ChunkSize, seconds)
	r.Log.WithFields(logrus.Fields{"seconds": seconds, "chunks": n}).Info("recording")

	samples := make([]int, 0, n*r.ChunkSize)
	buf := make([]int16, r.ChunkSize)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			stream.Close()
			return "", err
		}
		if err := stream.Read(buf); err != nil {
			stream.Close()
			return "", fmt.Errorf("audio read: %w", err)
		}
		for _, s := range buf {
			samples = append(samples, int(s))
		}
	}
	if err := stream.Close(); err != nil {
		r.Log.WithError(err).Warn("closing input stream")
	}
	r.Log.Info("recording finished")

	path := filepath.Join(r.Dir, r.Name)
	if err := writeWAV(path, r.SampleRate, samples); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func writeWAV(path string, sampleRate int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(f, sampleRate, BitDepth, Channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: Channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("wav close: %w", err)
	}
	return f.Close()
}
