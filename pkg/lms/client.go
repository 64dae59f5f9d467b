package lms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/httputil"
)

const httpTimeout = 10 * time.Second

// DefaultCacheTTL is how long curriculum and caption responses stay fresh.
const DefaultCacheTTL = 24 * time.Hour

// Client provides access to the LMS API with caching and retry handling.
type Client struct {
	http    *http.Client
	cache   *httputil.Cache
	baseURL string
	token   string
}

// NewClient creates a Client for the API at baseURL authenticating with the
// given bearer token. Pass nil for cache to disable response caching.
func NewClient(baseURL, token string, cache *httputil.Cache) *Client {
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache,
		baseURL: baseURL,
		token:   token,
	}
}

// Curriculum fetches the full curriculum item list for a course. The
// response is cached by course ID; pass refresh to bypass the cache.
func (c *Client) Curriculum(ctx context.Context, courseID int64, refresh bool) (*Curriculum, error) {
	url := fmt.Sprintf(
		"%s/courses/%d/cached-subscriber-curriculum-items/"+
			"?page_size=300&fields[lecture]=title,asset,object_index"+
			"&fields[chapter]=title,object_index"+
			"&fields[asset]=title,asset_type,length",
		c.baseURL, courseID)

	var cur Curriculum
	key := fmt.Sprintf("curriculum:%d", courseID)
	if err := c.cached(ctx, key, refresh, &cur, func() error {
		return c.getJSON(ctx, url, &cur)
	}); err != nil {
		return nil, wrapFetch(err, "fetch curriculum for course %d", courseID)
	}
	return &cur, nil
}

// CaptionURL fetches the caption track URL for one lecture, preferring
// English. Returns an empty string (and no error) when the lecture has no
// captions at all.
func (c *Client) CaptionURL(ctx context.Context, courseID, lectureID int64, refresh bool) (string, error) {
	url := fmt.Sprintf(
		"%s/users/me/subscribed-courses/%d/lectures/%d/"+
			"?fields[lecture]=asset&fields[asset]=captions,title",
		c.baseURL, courseID, lectureID)

	var resp lectureResponse
	key := fmt.Sprintf("captions:%d:%d", courseID, lectureID)
	if err := c.cached(ctx, key, refresh, &resp, func() error {
		return c.getJSON(ctx, url, &resp)
	}); err != nil {
		return "", wrapFetch(err, "fetch captions for lecture %d", lectureID)
	}
	if resp.Asset == nil {
		return "", nil
	}
	return preferredCaption(resp.Asset.Captions), nil
}

// preferredCaption picks the English track when present, otherwise the
// first available one.
func preferredCaption(captions []Caption) string {
	for _, track := range captions {
		if track.LocaleID == "en_US" || track.VideoLabel == "English" {
			return track.URL
		}
	}
	if len(captions) > 0 {
		return captions[0].URL
	}
	return ""
}

// wrapFetch adds request context to an error while preserving a structured
// code already attached deeper in the chain.
func wrapFetch(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeNetwork
	}
	return errors.Wrap(code, err, format, args...)
}

// cached retrieves a value from cache or executes fetch (with retry) and
// caches the result. With refresh true the cache is bypassed.
func (c *Client) cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if c.cache != nil && !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			return nil
		}
	}
	if err := httputil.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Set(key, v)
	}
	return nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused across retries.
		_, _ = io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "LMS rejected the bearer token (status %d)", code)
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	case code == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeRateLimited, "rate limited")}
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "server error (status %d)", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}
