package realtorfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// Config holds the transport settings for the Realtor search endpoint.
type Config struct {
	BaseURL     string
	Parallelism int
	RandomDelay time.Duration
}

// RealtorFetcherAdapter owns every interaction with the Realtor search API.
type RealtorFetcherAdapter struct {
	collector *colly.Collector
	baseURL   string
}

// NewRealtorFetcherAdapter builds the parent collector. Per-search clones
// inherit its domain whitelist and limit rule.
func NewRealtorFetcherAdapter(cfg Config) (*RealtorFetcherAdapter, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("realtor adapter: invalid base URL %q", cfg.BaseURL)
	}

	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	c := colly.NewCollector(colly.AllowedDomains(parsed.Hostname()), colly.AllowURLRevisit())

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  parsed.Hostname(),
		Parallelism: cfg.Parallelism,
		RandomDelay: cfg.RandomDelay,
	}); err != nil {
		return nil, fmt.Errorf("realtor adapter: failed to set limit rule: %w", err)
	}

	// Every request carries the headers of a real browser.
	extensions.RandomUserAgent(c)
	extensions.Referer(c)

	return &RealtorFetcherAdapter{
		collector: c,
		baseURL:   cfg.BaseURL,
	}, nil
}
