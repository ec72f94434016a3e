// Package gemini wraps the Google Generative Language REST API. Only the
// generateContent surface is covered, with the google_search grounding tool
// enabled so reports can cite live market chatter.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Generative Language API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Config holds client construction options. Zero values select production
// defaults; BaseURL is overridden in tests.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// NewClient creates a Generative Language API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = 120 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "MemeStockTracker/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		userAgent:  config.UserAgent,
	}
}

// Request describes one generateContent exchange. WebSearch asks the model
// to ground its answer with live web search results.
type Request struct {
	APIKey    string
	Model     string
	Prompt    string
	WebSearch bool
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *googleSearch `json:"google_search,omitempty"`
}

type googleSearch struct{}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini API error %d (%s): %s", e.Code, e.Status, e.Message)
}

// GenerateContent issues a single generateContent call and returns the
// concatenated candidate text. One call, no retries: resilience lives in
// the caller's retry policy.
func (c *Client) GenerateContent(ctx context.Context, req Request) (string, error) {
	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
	}
	if req.WebSearch {
		body.Tools = []tool{{GoogleSearch: &googleSearch{}}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(req.Model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("x-goog-api-key", req.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generateContent request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode response (HTTP %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", decoded.Error
		}
		return "", fmt.Errorf("generateContent returned HTTP %d", resp.StatusCode)
	}

	text := collectText(decoded)
	if text == "" {
		return "", fmt.Errorf("generateContent returned no text candidates")
	}
	return text, nil
}

func collectText(resp generateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
