package verify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-matcher/internal/types"
)

// closedMarkers are page-text fragments that mean the posting is gone even
// though the URL still resolves.
var closedMarkers = []string{"job closed", "no longer accepting"}

// LinkProbeCheck probes the posting URL for 404s and closed-posting pages.
// It ships disabled: probing every scraped record is slow and a probe timeout
// must not block ingestion. Construct with enabled=true to turn it on.
type LinkProbeCheck struct {
	client  *http.Client
	enabled bool
}

// NewLinkProbeCheck creates the probe check.
func NewLinkProbeCheck(enabled bool) *LinkProbeCheck {
	return &LinkProbeCheck{
		client:  &http.Client{Timeout: 10 * time.Second},
		enabled: enabled,
	}
}

func (c *LinkProbeCheck) Name() string  { return "link_probe" }
func (c *LinkProbeCheck) Enabled() bool { return c.enabled }

// Apply fetches the URL and rejects on 404 or a closed-posting page.
// Unreachable URLs are rejected: a record nobody can open is not storable.
func (c *LinkProbeCheck) Apply(ctx context.Context, rec *types.RawJobRecord) bool {
	if rec.URL == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rec.URL, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		// Unparseable body but a live URL; accept.
		return true
	}

	pageText := strings.ToLower(doc.Text())
	for _, marker := range closedMarkers {
		if strings.Contains(pageText, marker) {
			return false
		}
	}
	return true
}
