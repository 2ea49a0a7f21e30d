package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "omni-moderation-latest"
)

// Result is the outcome of classifying one piece of content. Categories is
// an open set of policy labels; only labels mapped to true count as
// violations.
type Result struct {
	Flagged    bool
	Categories map[string]bool
}

// FlaggedLabels returns the violated category labels, sorted for a stable
// rendering.
func (r Result) FlaggedLabels() []string {
	var labels []string
	for label, violated := range r.Categories {
		if violated {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Classifier classifies chat content against a content policy. Callers must
// treat an error as reportable but non-fatal.
type Classifier interface {
	Classify(ctx context.Context, content string) (Result, error)
}

// Client calls the OpenAI moderations endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different endpoint. Used by
// tests and proxy setups.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type moderationRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}

func (c *Client) Classify(ctx context.Context, content string) (Result, error) {
	body, err := json.Marshal(moderationRequest{Input: content, Model: c.model})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/moderations", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("moderation service returned status %d", resp.StatusCode)
	}

	var decoded moderationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, err
	}

	if len(decoded.Results) == 0 {
		return Result{}, nil
	}

	first := decoded.Results[0]
	return Result{Flagged: first.Flagged, Categories: first.Categories}, nil
}
