package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type PersistBundle struct {
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Result
}

func mkSessionDir(outputsRoot, runID string) (string, string, error) {
	ts := time.Now().Format("20060102-150405")
	sid := "session_" + ts
	if len(runID) >= 8 {
		sid += "_" + runID[:8]
	}
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// persist writes <outputs>/session_<ts>/result.json and returns its path.
func persist(outputsRoot string, res *Result) (string, error) {
	sid, outDir, err := mkSessionDir(outputsRoot, res.RunID)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, "result.json")
	bundle := PersistBundle{SessionID: sid, GeneratedAt: time.Now(), Result: *res}
	if err := writeJSON(path, bundle); err != nil {
		return "", err
	}
	return path, nil
}
