package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelmap/internal/cache"
	"travelmap/internal/config"
	"travelmap/internal/mapview"
	"travelmap/internal/params"
	"travelmap/internal/stats"
	"travelmap/internal/wikitable"
)

//go:embed favicon.png
var favicon []byte

func newMux(cfg *config.Config, cacheStore cache.Cache) *http.ServeMux {
	mux := http.NewServeMux()

	fetcher := wikitable.NewFetcher(cacheStore)
	mapview.NewGeoJSONProxy(cacheStore).Register(mux)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		ctx := r.Context()
		st, err := regionStats(ctx, cfg, fetcher, r.URL.Query())
		if err != nil {
			slog.ErrorContext(ctx, "failed to build map data", "error", err)
			http.Error(w, "could not load travel data", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html;charset=UTF-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if err := mapview.Render(w, st); err != nil {
			slog.ErrorContext(ctx, "map template execute error", "error", err)
		}
	})

	ro := &readyOnce{}
	ro.Add(cacheCheck{cacheStore})
	mux.Handle("/ready", ro)

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png") // <= without this, many UAs ignore it
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if _, err := w.Write(favicon); err != nil {
			slog.ErrorContext(r.Context(), "failed to write favicon", "error", err)
		}
	})

	return mux
}

// regionStats picks the data path for a request: explicit query parameters
// win, then the configured wiki page, then an empty map.
func regionStats(ctx context.Context, cfg *config.Config, fetcher *wikitable.Fetcher, q url.Values) (*stats.RegionStats, error) {
	if params.Recognized(q) {
		return stats.Classify(params.Decode(q)), nil
	}
	if cfg.Wiki.URL != "" {
		rawHTML, err := fetcher.FetchHTML(ctx, cfg.Wiki.URL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", cfg.Wiki.URL, err)
		}
		acc, err := wikitable.Parse(rawHTML)
		if err != nil {
			return nil, fmt.Errorf("parsing trip tables: %w", err)
		}
		return stats.Classify(acc.DecodedInput(cfg.Map.Title)), nil
	}
	in := params.Decode(q)
	if q.Get("title") == "" {
		in.Title = params.SanitizeTitle(cfg.Map.Title)
	}
	return stats.Classify(in), nil
}

func runServer(cfg *config.Config, addr string) error {
	mux := newMux(cfg, cache.NewFileCache(cfg.Cache.Dir))

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Serving travel map", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server)
	}
}

func gracefulShutdown(svr *http.Server) error {
	// Give outstanding requests 25 seconds to complete (kubernetes has 30 second grace period)
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		// Force close after timeout
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}
	return nil
}
