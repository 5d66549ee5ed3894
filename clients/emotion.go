package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"

	"github.com/maastricht-university/gesture-pipeline/emotion"
)

// --- Emotion (/detect-emotions) ---
type FaceResp struct {
	Box      [4]int             `json:"box"` // x, y, w, h
	Emotions map[string]float64 `json:"emotions"`
}
type EmoResp struct {
	Faces []FaceResp `json:"faces"`
}

// DetectEmotions sends one frame to the detector sidecar.
func (h *HTTP) DetectEmotions(ctx context.Context, url string, frame image.Image) ([]emotion.Face, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return nil, err
	}
	if err = jpeg.Encode(fw, frame, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("emotion encode: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/detect-emotions", &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := h.do("emotion", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out EmoResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("emotion decode: %w", err)
	}

	faces := make([]emotion.Face, 0, len(out.Faces))
	for _, f := range out.Faces {
		x, y, bw, bh := f.Box[0], f.Box[1], f.Box[2], f.Box[3]
		faces = append(faces, emotion.Face{Box: image.Rect(x, y, x+bw, y+bh), Emotions: f.Emotions})
	}
	return faces, nil
}

// Detector binds DetectEmotions to one sidecar URL.
type Detector struct {
	HTTP *HTTP
	URL  string
}

func (d Detector) Detect(ctx context.Context, frame image.Image) ([]emotion.Face, error) {
	return d.HTTP.DetectEmotions(ctx, d.URL, frame)
}
