package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	cfg "github.com/maastricht-university/gesture-pipeline/config"
)

var (
	ErrTranscription = errors.New("transcription failed")
	ErrTranslation   = errors.New("translation failed")
)

type Pipeline struct {
	cfg      *cfg.Root
	recorder Recorder
	speech   Speech
	out      io.Writer
	log      logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, rec Recorder, sp Speech, out io.Writer, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{cfg: c, recorder: rec, speech: sp, out: out, log: log}
}

// Run records, transcribes and translates once. A failed recording is
// returned as an error; failed remote steps are reported to the user and
// recorded in the Result. The temporary recording is always removed.
func (p *Pipeline) Run(ctx context.Context, r Request) (*Result, error) {
	if r.Duration <= 0 {
		r.Duration = DefaultDuration
	}
	if r.TargetLanguage == "" {
		r.TargetLanguage = DefaultTarget
	}
	res := &Result{RunID: uuid.NewString(), Duration: r.Duration, TargetLanguage: r.TargetLanguage}
	log := p.log.WithField("run_id", res.RunID)

	fmt.Fprintf(p.out, "\nSpeak now (%d seconds)...\n", r.Duration)
	wavPath, err := p.recorder.Record(ctx, r.Duration)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(wavPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warn("removing temporary audio")
		}
	}()
	fmt.Fprintln(p.out, "Recording finished.")

	fmt.Fprintln(p.out, "\nTranscribing...")
	url := p.cfg.Services.Speech.URL
	transcript, err := p.speech.Transcribe(ctx, url, wavPath, transcribeSource)
	if err != nil {
		log.WithError(err).Error("stt")
	}
	if transcript == "" {
		fmt.Fprintln(p.out, "Transcription failed.")
		res.Error = errorText(ErrTranscription, err)
		p.persist(log, res)
		return res, nil
	}
	res.Transcript = transcript
	fmt.Fprintf(p.out, "\nOriginal Speech:\n%s\n", transcript)

	fmt.Fprintln(p.out, "\nTranslating...")
	translated, err := p.speech.Translate(ctx, url, transcript, translateSource, r.TargetLanguage)
	if err != nil {
		log.WithError(err).Error("translate")
	}
	if translated != "" {
		res.Translation = translated
		fmt.Fprintf(p.out, "\nTranslated Text:\n%s\n", translated)
	} else {
		fmt.Fprintln(p.out, "Translation failed.")
		res.Error = errorText(ErrTranslation, err)
	}

	p.persist(log, res)
	return res, nil
}

func errorText(kind, cause error) string {
	if cause == nil {
		return kind.Error() + ": empty result"
	}
	return fmt.Errorf("%w: %v", kind, cause).Error()
}

func (p *Pipeline) persist(log logrus.FieldLogger, res *Result) {
	if p.cfg.Paths.Outputs == "" {
		return
	}
	path, err := persist(p.cfg.Paths.Outputs, res)
	if err != nil {
		log.WithError(err).Warn("persist result")
		return
	}
	log.WithField("path", path).Info("result saved")
}
