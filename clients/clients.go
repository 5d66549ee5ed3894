package clients

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// KeyHeader carries the subscription key on every request.
const KeyHeader = "api-subscription-key"

type HTTP struct {
	c   *http.Client
	key string
	log logrus.FieldLogger
}

// NewHTTP builds a client; timeout 0 leaves requests unbounded.
func NewHTTP(timeout time.Duration, apiKey string, log logrus.FieldLogger) *HTTP {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HTTP{c: &http.Client{Timeout: timeout}, key: apiKey, log: log}
}

// StatusError is returned for any non-200 answer.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d %s: %s", e.Service, e.Code, http.StatusText(e.Code), e.Body)
}

func (h *HTTP) do(service string, req *http.Request) (*http.Response, error) {
	if h.key != "" {
		req.Header.Set(KeyHeader, h.key)
	}
	resp, err := h.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", service, err)
	}
	h.log.WithFields(logrus.Fields{"service": service, "status": resp.StatusCode}).Debug("status code")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Service: service, Code: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}
