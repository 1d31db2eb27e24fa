package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Enhancer rewrites feedback text into a more constructive form. The
// implementation is an opaque collaborator; callers decide what a failure
// means.
//
//go:generate mockgen -source=feedback_enhancer.go -destination=mock/enhancer_mock.go -package=mock
type Enhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}

type httpEnhancer struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

type enhanceRequest struct {
	Text string `json:"text"`
}

type enhanceResponse struct {
	Text string `json:"text"`
}

// NewHTTPEnhancer calls an external rewriting endpoint. No retries; a
// single attempt within the given timeout.
func NewHTTPEnhancer(url string, timeout time.Duration, logger ...*zap.Logger) Enhancer {
	l := zap.L().Named("feedback.enhancer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.enhancer")
	}
	return &httpEnhancer{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: l,
	}
}

func (e *httpEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(enhanceRequest{Text: text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("enhancer call failed", zap.Error(err))
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		e.logger.Warn("enhancer returned non-200", zap.Int("status", res.StatusCode))
		return "", fmt.Errorf("enhancer returned status %d", res.StatusCode)
	}

	var parsed enhanceResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("enhancer returned empty text")
	}
	return parsed.Text, nil
}
