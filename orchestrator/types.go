package orchestrator

import "context"

const (
	DefaultDuration = 5 // seconds
	DefaultTarget   = "en-IN"

	transcribeSource = "unknown"
	translateSource  = "auto"
)

type Request struct {
	Duration       int    // seconds
	TargetLanguage string // e.g. "en-IN"
}

// Result is what one run produced; empty fields mean the step did not succeed.
type Result struct {
	RunID          string `json:"run_id"`
	Duration       int    `json:"duration"`
	TargetLanguage string `json:"target_language"`
	Transcript     string `json:"transcript,omitempty"`
	Translation    string `json:"translation,omitempty"`
	Error          string `json:"error,omitempty"`
}

type Recorder interface {
	Record(ctx context.Context, seconds int) (string, error)
}

// Speech is the remote speech-to-text and translate API.
type Speech interface {
	Transcribe(ctx context.Context, url, wavPath, languageCode string) (string, error)
	Translate(ctx context.Context, url, text, sourceLang, targetLang string) (string, error)
}
