package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"travelmap/internal/cache"
	"travelmap/internal/config"
	"travelmap/internal/params"
	"travelmap/internal/stats"
	"travelmap/internal/wikitable"
)

func main() {
	var serve bool
	var addr string
	var scrapeURL string
	var paramStr string
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.StringVar(&scrapeURL, "scrape", "", "Scrape trip tables from a wiki page and print the embed query string")
	flag.StringVar(&paramStr, "params", "", "Decode a raw query string and print the classified map data as JSON")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if serve {
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if scrapeURL != "" {
		if err := runScrape(cfg, scrapeURL); err != nil {
			log.Fatalf("scrape error: %v", err)
		}
		return
	}

	if paramStr != "" {
		if err := runParams(paramStr); err != nil {
			log.Fatalf("params error: %v", err)
		}
		return
	}

	showHelp()
	os.Exit(1)
}

func runScrape(cfg *config.Config, pageURL string) error {
	fetcher := wikitable.NewFetcher(cache.NewFileCache(cfg.Cache.Dir))
	rawHTML, err := fetcher.FetchHTML(context.TODO(), pageURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	acc, err := wikitable.Parse(rawHTML)
	if err != nil {
		return fmt.Errorf("parsing trip tables: %w", err)
	}
	fmt.Println(acc.EmbedQuery(cfg.Map.Title))
	return nil
}

func runParams(raw string) error {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parsing query string: %w", err)
	}
	st := stats.Classify(params.Decode(q))
	out, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func showHelp() {
	fmt.Println("travelmap - choropleth travel map server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  travelmap -serve [-addr :8080]")
	fmt.Println("  travelmap -scrape <wiki page url>")
	fmt.Println("  travelmap -params <query string>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -serve          Run the HTTP server")
	fmt.Println("  -addr           Address to bind in server mode (default :8080)")
	fmt.Println("  -scrape         Print the embed query string for a wiki page URL")
	fmt.Println("  -params         Print map data JSON for a raw query string")
	fmt.Println("  -help, -h       Show this help message")
}
