// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poiesic/newswire"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "newswire",
		Usage: "News dataset ingestion and semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Ingest the dataset if needed, then serve the HTTP API",
				Action: serveCommand,
			},
			{
				Name:   "ingest",
				Usage:  "Load the CSV dataset into storage with embeddings",
				Action: ingestCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a semantic search against stored articles",
				Action:    searchCommand,
				ArgsUsage: "<query>",
			},
			{
				Name:   "count",
				Usage:  "Count stored articles matching field filters",
				Action: countCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Substring to match in titles"},
					&cli.StringFlag{Name: "pub-date", Usage: "Substring to match in publication dates"},
					&cli.StringFlag{Name: "guid", Usage: "Substring to match in GUIDs"},
					&cli.StringFlag{Name: "link", Usage: "Substring to match in links"},
					&cli.StringFlag{Name: "description", Usage: "Substring to match in descriptions"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newService(c *cli.Context) (*newswire.Service, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return newswire.NewService(cfg)
}

func serveCommand(c *cli.Context) error {
	service, err := newService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return service.Serve(ctx)
}

func ingestCommand(c *cli.Context) error {
	service, err := newService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	inserted, err := service.Ingest(context.Background())
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if inserted == 0 {
		fmt.Fprintln(os.Stderr, "Dataset already loaded, nothing to do")
	} else {
		fmt.Fprintf(os.Stderr, "Inserted %d articles\n", inserted)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("search query is required")
	}

	service, err := newService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	searcher, err := service.NewSearcher()
	if err != nil {
		return err
	}

	results, err := searcher.Search(context.Background(), query)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func countCommand(c *cli.Context) error {
	filter := &core.QueryFilter{
		Title:       c.String("title"),
		PubDate:     c.String("pub-date"),
		GUID:        c.String("guid"),
		Link:        c.String("link"),
		Description: c.String("description"),
	}

	service, err := newService(c)
	if err != nil {
		return err
	}
	defer service.Close()

	counter, err := service.NewCounter()
	if err != nil {
		return err
	}

	count, err := counter.CountMatching(context.Background(), filter)
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
