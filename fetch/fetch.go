// SPDX-License-Identifier: EPL-2.0

package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is where relative clip references are resolved.
const DefaultBaseURL = "https://lingopolo.org"

// Fetcher returns the raw bytes of one clip.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// HTTPFetcher downloads clips over HTTP. Relative references such as
// "/audio/bonjour.mp3" are resolved against BaseURL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
	Logger  *log.Logger
}

// NewHTTPFetcher creates a fetcher with a 30 second client timeout. An empty
// baseURL means DefaultBaseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Resolve returns the absolute URL for ref.
func (f *HTTPFetcher) Resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", ErrEmptyReference
	}

	base, err := url.Parse(f.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}

	rel, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", ref, err)
	}

	return base.ResolveReference(rel).String(), nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	u, err := f.Resolve(ref)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	logf(f.Logger, "fetching %s", u)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, u, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u, err)
	}

	return data, nil
}

// FileFetcher reads clips from the local filesystem. Relative references
// are joined to Root; "file://" URLs are accepted.
type FileFetcher struct {
	Root string
}

func (f FileFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, ErrEmptyReference
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := ref
	if u, err := url.Parse(ref); err == nil && u.Scheme == "file" {
		p = u.Path
	}

	if !filepath.IsAbs(p) && f.Root != "" {
		p = filepath.Join(f.Root, p)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading clip: %w", err)
	}

	return data, nil
}

// Router sends http and https references to Remote and everything else to
// Local. When Remote is set, bare paths starting with "/" are treated as
// site-relative and go to Remote too.
type Router struct {
	Remote Fetcher
	Local  Fetcher
}

func (r Router) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, ErrEmptyReference
	}

	next := r.Local
	if r.Remote != nil && isRemote(ref) {
		next = r.Remote
	}

	if next == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoFetcher, ref)
	}

	return next.Fetch(ctx, ref)
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}

	switch u.Scheme {
	case "http", "https":
		return true
	case "":
		return strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//")
	}

	return false
}

func logf(l *log.Logger, format string, args ...any) {
	if l != nil {
		l.Printf(format, args...)
	}
}
