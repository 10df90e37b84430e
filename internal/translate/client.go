// Package translate translates short Portuguese UI strings through the public
// Google translate endpoint.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-emissions-dashboard/internal/cache"
)

const (
	// DefaultBaseURL is the public Google translate API root.
	DefaultBaseURL = "https://translate.googleapis.com"

	// SourceLanguage is the language every translated string is written in.
	SourceLanguage = "pt"

	translatePath = "/translate_a/single"
)

var (
	// ErrMissingParameters is returned when text or target language is empty.
	ErrMissingParameters = errors.New("missing parameters")

	// ErrTranslationFailed wraps upstream and decoding failures.
	ErrTranslationFailed = errors.New("translation failed")
)

// Translator translates text from SourceLanguage into targetLang.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Client calls the gtx endpoint, throttled by a token bucket.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a Client. rps limits outbound calls per second.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Translate returns the first translated segment, or text itself when the
// response carries none. Text already in the source language is returned as-is.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(targetLang) == "" {
		return "", ErrMissingParameters
	}
	if IsSourceLanguage(targetLang) {
		return text, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait canceled: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     SourceLanguage,
			"tl":     targetLang,
			"dt":     "t",
			"q":      text,
		}).
		Get(translatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrTranslationFailed, resp.StatusCode())
	}

	segment, err := firstSegment(resp.Body())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	if segment == "" {
		return text, nil
	}
	return segment, nil
}

// firstSegment reads data[0][0][0] from the nested gtx array.
func firstSegment(body []byte) (string, error) {
	var data []json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(data[0], &sentences); err != nil || len(sentences) == 0 || len(sentences[0]) == 0 {
		// null or an unexpected shape: nothing translated
		return "", nil
	}

	var segment string
	if err := json.Unmarshal(sentences[0][0], &segment); err != nil {
		return "", nil
	}
	return segment, nil
}

// IsSourceLanguage reports whether lang names Portuguese in any regional form.
func IsSourceLanguage(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.EqualFold(lang, SourceLanguage)
	}
	base, _ := tag.Base()
	return base.String() == SourceLanguage
}

// Cached memoizes a Translator in a TTL cache keyed by text and target language.
type Cached struct {
	next   Translator
	cache  *cache.TTL[string, string]
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps next. The cache is shared so a scheduler can sweep it.
func NewCached(next Translator, c *cache.TTL[string, string], ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("component", "translate-cache"),
	}
}

// Translate serves from the cache when possible. Failures are not cached.
func (c *Cached) Translate(ctx context.Context, text, targetLang string) (string, error) {
	key := text + "-" + targetLang
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}

	v, err := c.next.Translate(ctx, text, targetLang)
	if err != nil {
		return "", err
	}

	c.cache.Set(key, v, c.ttl)
	c.logger.Debug("translation cached", "target", targetLang, "entries", c.cache.Len())
	return v, nil
}

var (
	_ Translator = (*Client)(nil)
	_ Translator = (*Cached)(nil)
)
