package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fortuna/gridiron/internal/config"
	"github.com/fortuna/gridiron/internal/ingest/ourlads"
)

func main() {
	teams := os.Args[1:]
	if len(teams) == 0 {
		log.Fatal("usage: starters <team> [team...]  (e.g. starters buf kc phi)")
	}

	cfg := config.Load()

	client := ourlads.New(cfg.OurladsBaseURL)
	ingester := ourlads.NewIngester(client, cfg.OverridePath)

	// One fetch per team at 30s each; leave generous headroom.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(len(teams))*time.Minute)
	defer cancel()

	starters := ingester.ReadStarters(ctx, teams)
	log.Printf("✓ Scraped %d starters across %d teams", len(starters), len(teams))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Team", "Position", "Player", "Status"})
	for _, s := range starters {
		t.AppendRow(table.Row{s.Team, s.Position, s.Player, s.Status})
	}
	t.Render()
}
