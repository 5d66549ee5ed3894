// Package annotate runs the live camera loop: mirror each frame, ask the
// detector for faces, draw the mapped expression and show the result.
package annotate

import (
	"context"
	"errors"
	"image"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/gesture-pipeline/emotion"
)

type Source interface {
	Read() (image.Image, error)
}

type Detector interface {
	Detect(ctx context.Context, frame image.Image) ([]emotion.Face, error)
}

type Display interface {
	Show(frame image.Image) error
	PollKey(d time.Duration) int
}

const QuitKey = 'q'

type Loop struct {
	Source   Source
	Detector Detector
	Display  Display
	KeyPoll  time.Duration
	Log      logrus.FieldLogger
}

// Run processes frames until quit, source exhaustion or ctx cancellation.
// It returns the number of frames shown.
func (l *Loop) Run(ctx context.Context) (int, error) {
	if l.KeyPoll <= 0 {
		l.KeyPoll = time.Millisecond
	}
	if l.Log == nil {
		l.Log = logrus.StandardLogger()
	}

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return frames, nil
		}

		img, err := l.Source.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.Log.WithError(err).Warn("frame read failed")
			}
			return frames, nil
		}

		frame := imaging.FlipH(img)

		faces, err := l.Detector.Detect(ctx, frame)
		if err != nil {
			l.Log.WithError(err).Warn("emotion detection failed")
			faces = nil
		}
		labels := Render(frame, faces)
		for i, label := range labels {
			l.Log.WithFields(logrus.Fields{"frame": frames, "box": faces[i].Box.String(), "label": label}).Debug("face")
		}

		if err := l.Display.Show(frame); err != nil {
			return frames, err
		}
		frames++

		if l.Display.PollKey(l.KeyPoll)&0xFF == QuitKey {
			l.Log.Info("quit requested")
			return frames, nil
		}
	}
}
