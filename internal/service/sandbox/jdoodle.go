// Package sandbox proxies code execution to the JDoodle REST API.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sganguly/teacher-avatars/backend/internal/config"
)

// ErrUpstream is returned when JDoodle answers with a non-2xx status.
var ErrUpstream = errors.New("jdoodle api error")

// Request is one code-execution job.
type Request struct {
	Code         string `json:"code"`
	Language     string `json:"language"`
	VersionIndex string `json:"versionIndex"`
	Stdin        string `json:"stdin"`
}

// Result is the normalized execution outcome.
type Result struct {
	Output     string `json:"output"`
	Memory     string `json:"memory,omitempty"`
	CPUTime    string `json:"cpuTime,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// Client executes code through JDoodle.
type Client struct {
	cfg        config.SandboxConfig
	httpClient *http.Client
}

// NewClient builds the JDoodle client. The execution deadline comes from the
// per-call context, set by Execute from the configured timeout.
func NewClient(cfg config.SandboxConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// Execute runs the job and normalizes the response. Defaults: language java,
// versionIndex 3.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Language == "" {
		req.Language = "java"
	}
	if req.VersionIndex == "" {
		req.VersionIndex = "3"
	}

	payload, err := json.Marshal(map[string]string{
		"clientId":     c.cfg.ClientID,
		"clientSecret": c.cfg.ClientSecret,
		"script":       req.Code,
		"language":     req.Language,
		"versionIndex": req.VersionIndex,
		"stdin":        req.Stdin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode jdoodle payload: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build jdoodle request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("jdoodle request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read jdoodle response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var out struct {
		Output     string `json:"output"`
		Memory     string `json:"memory"`
		CPUTime    string `json:"cpuTime"`
		StatusCode int    `json:"statusCode"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode jdoodle response: %w", err)
	}

	return &Result{
		Output:     out.Output,
		Memory:     out.Memory,
		CPUTime:    out.CPUTime,
		StatusCode: out.StatusCode,
	}, nil
}
