package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// --- Speech to text (/speech-to-text) ---
type STTResp struct {
	Transcript   string `json:"transcript"`
	LanguageCode string `json:"language_code,omitempty"`
}

// Transcribe uploads a WAV file and returns the transcript verbatim.
func (h *HTTP) Transcribe(ctx context.Context, url, wavPath, languageCode string) (string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(wavPath)))
	hdr.Set("Content-Type", "audio/wav")
	fw, err := w.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	fd, err := os.Open(wavPath)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	if _, err = io.Copy(fw, fd); err != nil {
		return "", err
	}
	if err = w.WriteField("language_code", languageCode); err != nil {
		return "", err
	}
	if err = w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/speech-to-text", &b)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := h.do("stt", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out STTResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("stt decode: %w", err)
	}
	return out.Transcript, nil
}

// --- Translate (/translate) ---
type TranslateReq struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
}
type TranslateResp struct {
	TranslatedText string `json:"translated_text"`
}

// Translate returns the translated text verbatim.
func (h *HTTP) Translate(ctx context.Context, url, text, sourceLang, targetLang string) (string, error) {
	b, _ := json.Marshal(TranslateReq{Input: text, SourceLanguageCode: sourceLang, TargetLanguageCode: targetLang})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/translate", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.do("translate", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out TranslateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("translate decode: %w", err)
	}
	return out.TranslatedText, nil
}
