package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/internal/transfer"
)

// PublishDispatcher performs the actual call that makes a post live on a
// platform. The real WordPress/Facebook/Threads integrations live behind
// the publisher backend; this side only carries the boundary contract.
type PublishDispatcher interface {
	Publish(ctx context.Context, platform string, req *transfer.PublishDispatch) (string, error)
}

type httpDispatcher struct {
	cfg    config.Config
	client *http.Client
}

func NewHTTPDispatcher(cfg config.Config) PublishDispatcher {
	return &httpDispatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (d *httpDispatcher) Publish(ctx context.Context, platform string, req *transfer.PublishDispatch) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/publish/%s", d.cfg.PublisherBaseURL, platform)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result transfer.PublishResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		result = transfer.PublishResult{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := result.Error
		if detail == "" {
			detail = string(respBody)
		}
		err := fmt.Errorf("publisher returned %d: %s", resp.StatusCode, detail)
		slog.Info(err.Error())
		return "", err
	}

	if result.URL == "" {
		return "", errors.New("publisher response missing url")
	}

	return result.URL, nil
}
