// Package translit talks to the Google Input Tools transliteration endpoint.
package translit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultEndpoint   = "https://inputtools.google.com/request"
	DefaultInputTool  = "ne-t-i0-und" // Nepali, transliteration from Latin
	DefaultCandidates = 1

	statusSuccess = "SUCCESS"
)

var (
	// ErrNotSuccess is returned when the endpoint answers with a status
	// marker other than "SUCCESS".
	ErrNotSuccess = errors.New("transliteration not successful")

	// ErrNoCandidate is returned when a "SUCCESS" response carries no
	// candidate for the first segment.
	ErrNoCandidate = errors.New("no candidate in response")
)

// Transliterator converts Roman-script text into its native-script rendering.
type Transliterator interface {
	Transliterate(ctx context.Context, text string) (string, error)
}

// Func adapts a plain function to the Transliterator interface.
type Func func(ctx context.Context, text string) (string, error)

// Transliterate calls f.
func (f Func) Transliterate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	Endpoint   string
	InputTool  string
	Candidates int
	Timeout    time.Duration // 0 means no timeout
}

// Client is an Input Tools HTTP client.
type Client struct {
	endpoint   string
	inputTool  string
	candidates int
	httpClient *http.Client
}

// NewClient creates a new transliteration client.
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.InputTool == "" {
		opts.InputTool = DefaultInputTool
	}
	if opts.Candidates <= 0 {
		opts.Candidates = DefaultCandidates
	}

	return &Client{
		endpoint:   opts.Endpoint,
		inputTool:  opts.InputTool,
		candidates: opts.Candidates,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// RequestURL builds the GET URL for text.
func (c *Client) RequestURL(text string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint: %w", err)
	}

	q := u.Query()
	q.Set("text", text)
	q.Set("itc", c.inputTool)
	q.Set("num", strconv.Itoa(c.candidates))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Transliterate sends text to the endpoint and returns the top candidate of
// the first segment.
func (c *Client) Transliterate(ctx context.Context, text string) (string, error) {
	reqURL, err := c.RequestURL(text)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return ParseResponse(body)
}

// ParseResponse extracts results[0][1][0] from an Input Tools response body:
//
//	["SUCCESS", [["namaste", ["नमस्ते"], ...], ...]]
func ParseResponse(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(top) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	var status string
	if err := json.Unmarshal(top[0], &status); err != nil {
		return "", fmt.Errorf("unmarshaling status: %w", err)
	}
	if status != statusSuccess {
		return "", fmt.Errorf("%w: status %q", ErrNotSuccess, status)
	}
	if len(top) < 2 {
		return "", ErrNoCandidate
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(top[1], &segments); err != nil {
		return "", fmt.Errorf("unmarshaling results: %w", err)
	}
	if len(segments) == 0 || len(segments[0]) < 2 {
		return "", ErrNoCandidate
	}

	var candidates []string
	if err := json.Unmarshal(segments[0][1], &candidates); err != nil {
		return "", fmt.Errorf("unmarshaling candidates: %w", err)
	}
	if len(candidates) == 0 {
		return "", ErrNoCandidate
	}

	return candidates[0], nil
}
