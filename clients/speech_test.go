package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestHTTP(t *testing.T) (*HTTP, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewHTTP(0, "sk_test", log), hook
}

func writeWAV(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "temp.wav")
	if err := os.WriteFile(p, []byte("RIFF....WAVE"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTranscribe_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/speech-to-text" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get(KeyHeader); got != "sk_test" {
			t.Errorf("%s = %q", KeyHeader, got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("language_code"); got != "unknown" {
			t.Errorf("language_code = %q", got)
		}
		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if fh.Filename != "temp.wav" || fh.Header.Get("Content-Type") != "audio/wav" {
			t.Errorf("file part = %q %q", fh.Filename, fh.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(f)
		if string(body) != "RIFF....WAVE" {
			t.Errorf("file body = %q", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transcript":"  namaste duniya ","language_code":"hi-IN"}`))
	}))
	defer srv.Close()

	h, hook := newTestHTTP(t)
	got, err := h.Transcribe(context.Background(), srv.URL, writeWAV(t), "unknown")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "  namaste duniya " {
		t.Errorf("transcript = %q; want verbatim", got)
	}
	if e := hook.LastEntry(); e == nil || e.Data["status"] != http.StatusOK {
		t.Errorf("status code not logged: %+v", e)
	}
}

func TestTranscribe_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	h, _ := newTestHTTP(t)
	got, err := h.Transcribe(context.Background(), srv.URL, writeWAV(t), "unknown")
	if err == nil {
		t.Fatalf("expected error, got transcript %q", got)
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if se.Code != http.StatusForbidden || se.Service != "stt" {
		t.Errorf("status error = %+v", se)
	}
}

func TestTranscribe_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	h, _ := newTestHTTP(t)
	_, err := h.Transcribe(context.Background(), url, writeWAV(t), "unknown")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Errorf("transport failure should not be a StatusError: %v", err)
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	h, _ := newTestHTTP(t)
	if _, err := h.Transcribe(context.Background(), "http://127.0.0.1:0", filepath.Join(t.TempDir(), "none.wav"), "unknown"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTranslate_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if got := r.Header.Get(KeyHeader); got != "sk_test" {
			t.Errorf("%s = %q", KeyHeader, got)
		}
		var in TranslateReq
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := TranslateReq{Input: "hello", SourceLanguageCode: "auto", TargetLanguageCode: "hi-IN"}
		if in != want {
			t.Errorf("payload = %+v; want %+v", in, want)
		}
		w.Write([]byte(`{"translated_text":"नमस्ते"}`))
	}))
	defer srv.Close()

	h, _ := newTestHTTP(t)
	got, err := h.Translate(context.Background(), srv.URL, "hello", "auto", "hi-IN")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "नमस्ते" {
		t.Errorf("translated = %q", got)
	}
}

func TestTranslate_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	h, _ := newTestHTTP(t)
	got, err := h.Translate(context.Background(), srv.URL, "hello", "auto", "en-IN")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v (text %q)", err, got)
	}
	if se.Code != 500 || se.Body != "boom" || se.Service != "translate" {
		t.Errorf("status error = %+v", se)
	}
	if got != "" {
		t.Errorf("translated = %q; want empty on failure", got)
	}
}

func TestTranslate_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	h, _ := newTestHTTP(t)
	if _, err := h.Translate(context.Background(), srv.URL, "hello", "auto", "en-IN"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNoKeyHeaderWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header[http.CanonicalHeaderKey(KeyHeader)]; ok {
			t.Errorf("unexpected %s header", KeyHeader)
		}
		w.Write([]byte(`{"translated_text":"x"}`))
	}))
	defer srv.Close()

	h := NewHTTP(0, "", logrus.New())
	if _, err := h.Translate(context.Background(), srv.URL, "a", "auto", "en-IN"); err != nil {
		t.Fatal(err)
	}
}
