// Package registry implements domain.RegistryClient over the registry's
// HTTP check endpoint. This is the single network dependency of a run;
// errors are returned as-is and never retried. Timeouts and cancellation
// come from the caller's context.
package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/schemaguard/schemaguard/internal/domain"
)

const checkPath = "/api/check"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a registry client for the given base URL. The API key is
// optional; when set it is sent as the X-API-Key header.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// checkPayload is the wire shape of a check request. The tagged threshold
// variant flattens into the two optional fields the registry expects.
type checkPayload struct {
	ServiceID   string           `json:"serviceId"`
	Tag         string           `json:"tag"`
	Schema      string           `json:"schema"`
	FrontendURL string           `json:"frontendUrl,omitempty"`
	Git         *gitPayload      `json:"git,omitempty"`
	Historic    *historicPayload `json:"historicParameters,omitempty"`
}

type gitPayload struct {
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Committer string `json:"committer,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

type historicPayload struct {
	Window                        domain.ValidationWindow `json:"window"`
	QueryCountThreshold           *int                    `json:"queryCountThreshold,omitempty"`
	QueryCountThresholdPercentage *float64                `json:"queryCountThresholdPercentage,omitempty"`
}

func (c *Client) Check(ctx context.Context, req domain.CheckRequest) (*domain.CheckResult, error) {
	body, err := json.Marshal(buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("encoding check request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building check request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("registry returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var result domain.CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding check result: %w", err)
	}

	return &result, nil
}

func buildPayload(req domain.CheckRequest) checkPayload {
	p := checkPayload{
		ServiceID:   req.ServiceID,
		Tag:         req.Tag,
		Schema:      req.Schema.Body,
		FrontendURL: req.FrontendURL,
	}

	if !req.Git.Empty() {
		p.Git = &gitPayload{
			Commit:    req.Git.Commit,
			Branch:    req.Git.Branch,
			Committer: req.Git.Committer,
			RemoteURL: req.Git.RemoteURL,
		}
	}

	if req.Historic != nil {
		h := &historicPayload{Window: req.Historic.Window}
		if n, ok := req.Historic.Threshold.Count(); ok {
			h.QueryCountThreshold = &n
		}
		if pct, ok := req.Historic.Threshold.Percentage(); ok {
			h.QueryCountThresholdPercentage = &pct
		}
		p.Historic = h
	}

	return p
}
