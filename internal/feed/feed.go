package feed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"status_monitor/internal/models"

	"github.com/mmcdole/gofeed"
)

// Fetcher returns feed entries newest first.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.FeedEntry, error)
}

// HTTPFetcher downloads an RSS/Atom document and parses it with gofeed.
type HTTPFetcher struct {
	url       string
	userAgent string
	client    *http.Client
	parser    *gofeed.Parser
}

var _ Fetcher = (*HTTPFetcher)(nil)

const maxFeedBytes = 8 << 20 // 8 MB

// NewHTTPFetcher builds a fetcher for url. timeout 0 means the request is
// bounded only by ctx.
func NewHTTPFetcher(url, userAgent string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		url:       url,
		userAgent: userAgent,
		client:    newHTTPClient(timeout),
		parser:    gofeed.NewParser(),
	}
}

// newHTTPClient applies no dial or handshake deadline of its own; timeout is
// the only bound besides ctx.
func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		DialContext:     (&net.Dialer{KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// Fetch performs one GET and returns the entries in feed order.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]models.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("get %s: status %d: %s", f.url, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return Parse(f.parser, io.LimitReader(resp.Body, maxFeedBytes))
}

// Parse decodes a feed document into entries.
func Parse(p *gofeed.Parser, r io.Reader) ([]models.FeedEntry, error) {
	if p == nil {
		p = gofeed.NewParser()
	}
	doc, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	out := make([]models.FeedEntry, 0, len(doc.Items))
	for _, it := range doc.Items {
		if it == nil {
			continue
		}
		out = append(out, models.FeedEntry{
			Title:     strings.TrimSpace(it.Title),
			Summary:   PlainText(summaryOf(it)),
			Link:      it.Link,
			Published: publishedOf(it),
		})
	}
	return out, nil
}

func summaryOf(it *gofeed.Item) string {
	if it.Description != "" {
		return it.Description
	}
	return it.Content
}

// publishedOf prefers the publish date and falls back to the update date.
func publishedOf(it *gofeed.Item) time.Time {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.UTC()
	default:
		return time.Time{}
	}
}
