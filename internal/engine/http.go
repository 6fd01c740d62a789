package engine

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/MKhiriev/go-pack-config/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	buildPath          = "/build"
	invocationIDHeader = "X-Invocation-ID"
)

type buildRequest struct {
	InvocationID string   `json:"invocation_id,omitempty"`
	Config       tree.Map `json:"config"`
}

// HTTPEngine drives a build engine listening on a base URL.
type HTTPEngine struct {
	client *utils.HTTPClient
}

// NewHTTPEngine returns an engine client for baseURL. Each build request is
// bounded by timeout.
func NewHTTPEngine(baseURL string, timeout time.Duration) *HTTPEngine {
	return &HTTPEngine{client: utils.NewHTTPClient(baseURL, timeout)}
}

// Run posts config to the engine and decodes the returned stats. The
// invocation ID carried by ctx, if any, is forwarded.
func (h *HTTPEngine) Run(ctx context.Context, config tree.Map) (*Stats, error) {
	body := buildRequest{Config: config}
	req := h.client.R().SetContext(ctx)
	if id, ok := utils.GetInvocationIDFromContext(ctx); ok {
		body.InvocationID = id
		req.SetHeader(invocationIDHeader, id)
	}

	stats := &Stats{}
	resp, err := req.
		SetBody(body).
		SetResult(stats).
		Post(buildPath)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if len(resp.Body()) == 0 {
		return nil, ErrNoStats
	}

	return stats, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &FailureError{StatusCode: resp.StatusCode(), Body: body}
}
