// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package linkcheck verifies that the external links on a profile page
// (publication PDFs, DOIs and code, project pages, syllabi, social
// profiles) still resolve.
package linkcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/profile-site/pkg/types"
)

// Link is one outbound link and where it appears.
type Link struct {
	// Source names the profile entry, e.g. "publication morgan2024deepgene".
	Source string
	Kind   string
	URL    string
}

// Result is the outcome of checking one link.
type Result struct {
	Link
	Status int
	Err    error
}

// OK reports whether the link resolved to a non-error status.
func (r Result) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 400
}

// Links collects the absolute http(s) links of p. Placeholder and
// in-page links are skipped.
func Links(p *types.Profile) []Link {
	var links []Link
	add := func(source, kind, raw string) {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return
		}
		links = append(links, Link{Source: source, Kind: kind, URL: raw})
	}

	for _, s := range p.Socials {
		add("social "+s.Label, "profile", s.Href)
	}
	for _, pub := range p.Publications {
		src := "publication " + pub.ID
		if pub.HasPDF() {
			add(src, "pdf", pub.PDF)
		}
		if pub.DOI != "" {
			add(src, "doi", "https://doi.org/"+pub.DOI)
		}
		add(src, "code", pub.Code)
	}
	for _, pr := range p.Projects {
		add("project "+pr.Name, "project", pr.Link)
	}
	for _, c := range p.Teaching {
		add("course "+c.Course, "syllabus", c.Link)
	}
	return links
}

// Checker checks links concurrently.
type Checker struct {
	Client      *http.Client
	Concurrency int
	MaxRetries  int
	UserAgent   string
}

// NewChecker returns a Checker with a per-request timeout.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		Client:      &http.Client{Timeout: timeout},
		Concurrency: 4,
		UserAgent:   "profile-site-linkcheck/1.0",
	}
}

// Check resolves every link and returns results in input order. Failures
// are recorded per link; only cancellation of ctx aborts the run.
func (c *Checker) Check(ctx context.Context, links []Link) ([]Result, error) {
	results := make([]Result, len(links))
	g, gctx := errgroup.WithContext(ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, l := range links {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			status, err := c.checkOne(gctx, l.URL)
			results[i] = Result{Link: l, Status: status, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// checkOne tries HEAD and falls back to GET for servers that reject it.
func (c *Checker) checkOne(ctx context.Context, target string) (int, error) {
	status, err := c.request(ctx, http.MethodHead, target)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented || status == http.StatusForbidden) {
		return c.request(ctx, http.MethodGet, target)
	}
	return status, err
}

func (c *Checker) request(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := doWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck
	return resp.StatusCode, nil
}
