package emotion

import (
	"fmt"
	"image"
	"sort"
)

// Fallback is the output category used for any unrecognised source label.
const Fallback = "stress"

// Source labels reported by the detector, in detector order.
var Source = []string{"angry", "disgust", "fear", "happy", "sad", "surprise", "neutral"}

// Output categories shown on screen.
var Output = []string{"angry", "laugh", "sad", "smile", "stress"}

var table = map[string]string{
	"angry":    "angry",
	"disgust":  "stress",
	"fear":     "stress",
	"happy":    "laugh",
	"sad":      "sad",
	"surprise": "smile",
	"neutral":  "stress",
}

// Map remaps a detector label to one of the Output categories.
func Map(source string) string {
	if out, ok := table[source]; ok {
		return out
	}
	return Fallback
}

// Face is one detection in a single frame.
type Face struct {
	Box      image.Rectangle
	Emotions map[string]float64 // label -> confidence in [0,1]
}

// Top returns the highest scoring emotion. Equal scores resolve to the
// lexicographically smallest name so the result never depends on map order.
func Top(scores map[string]float64) (string, float64, bool) {
	if len(scores) == 0 {
		return "", 0, false
	}
	names := make([]string, 0, len(scores))
	for k := range scores {
		names = append(names, k)
	}
	sort.Strings(names)

	best := names[0]
	for _, n := range names[1:] {
		if scores[n] > scores[best] {
			best = n
		}
	}
	return best, scores[best], true
}

// Expression is the mapped category and the confidence behind it.
func (f Face) Expression() (string, float64) {
	top, score, ok := Top(f.Emotions)
	if !ok {
		return Fallback, 0
	}
	return Map(top), score
}

// Label is the text drawn above the face, e.g. "laugh (0.90)".
func (f Face) Label() string {
	expr, score := f.Expression()
	return fmt.Sprintf("%s (%.2f)", expr, score)
}
