package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source yields the raw JSON document of one lookup table
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// HTTPSource fetches a lookup table over HTTP
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a source for an absolute http(s) URL
func NewHTTPSource(rawURL string, httpClient *http.Client) *HTTPSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{url: rawURL, httpClient: httpClient}
}

// Open performs a GET request; any non-2xx status is an error
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s failed with status %d: %s", s.url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp.Body, nil
}

func (s *HTTPSource) String() string {
	return s.url
}

// FileSource reads a lookup table from the local filesystem
type FileSource struct {
	path string
}

// NewFileSource creates a source for a local path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens the file; the context is only checked before opening
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(s.path)
}

func (s *FileSource) String() string {
	return s.path
}

// NewSource picks an HTTP source for http(s) URLs, a file source for file:// URLs
// and bare paths.
func NewSource(location string, httpClient *http.Client) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	}

	parsed, err := url.Parse(location)
	if err != nil || parsed.Scheme == "" || len(parsed.Scheme) == 1 {
		// no scheme, or a Windows drive letter
		return NewFileSource(location), nil
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return NewHTTPSource(location, httpClient), nil
	case "file":
		return NewFileSource(parsed.Path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}
}
