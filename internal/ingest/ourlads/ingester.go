package ourlads

import (
	"context"
	"log"

	"github.com/fortuna/gridiron/internal/store"
)

// Ingester drives the per-team scrape and the override merge.
type Ingester struct {
	client       *Client
	overridePath string
}

// NewIngester creates an ingester using the given client. A nil client
// falls back to the default Ourlads endpoint. overridePath may be empty to
// disable override processing; DefaultOverridePath is the usual value.
func NewIngester(client *Client, overridePath string) *Ingester {
	if client == nil {
		client = NewClient()
	}
	return &Ingester{
		client:       client,
		overridePath: overridePath,
	}
}

// ScrapeTeam returns the normalized starter list for one team. Every
// expected failure mode (network error, non-2xx status, missing or
// malformed table, no offensive rows, no mappable positions) yields the
// empty list, never an error.
func (i *Ingester) ScrapeTeam(ctx context.Context, team string) []store.Starter {
	html, err := i.client.FetchDepthChart(ctx, team)
	if err != nil {
		log.Printf("[ourlads] %v", err)
		return emptyStarters()
	}
	return ParseDepthChart(html, team)
}

// ReadStarters scrapes every team sequentially in the given order,
// concatenates the per-team results, and applies the override file when
// one is configured and present. Teams that yield no data contribute zero
// rows.
func (i *Ingester) ReadStarters(ctx context.Context, teams []string) []store.Starter {
	out := emptyStarters()
	for _, team := range teams {
		starters := i.ScrapeTeam(ctx, team)
		log.Printf("[ourlads] %s: %d starters", team, len(starters))
		out = append(out, starters...)
	}

	if i.overridePath == "" {
		return out
	}
	overrides, exists := LoadOverrides(i.overridePath)
	if !exists {
		return out
	}
	return MergeOverrides(out, overrides)
}
