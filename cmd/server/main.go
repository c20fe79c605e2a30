package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/voltlink/dashboard/internal/config"
	"github.com/voltlink/dashboard/internal/insight"
	"github.com/voltlink/dashboard/internal/middleware"
	"github.com/voltlink/dashboard/internal/service"
	"github.com/voltlink/dashboard/internal/storage/sqlite"
	"github.com/voltlink/dashboard/pkg/logging"
)

func main() {
	configPath := flag.String("config", "./voltlink.toml", "path to TOML config file")
	flag.Parse()

	logging.Setup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Storage.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.DBPath)

	// Text-generation client. Without an API key every insight route
	// serves its fallback, which keeps the dashboard fully usable.
	if cfg.AI.APIKey == "" {
		slog.Warn("No AI API key configured; insight routes will serve fallbacks")
	}
	generator := insight.NewClient(cfg.AI.APIKey,
		insight.WithBaseURL(cfg.AI.BaseURL),
		insight.WithModel(cfg.AI.Model),
		insight.WithTimeout(cfg.AI.Timeout()),
	)

	mux := http.NewServeMux()
	service.NewRecordService(store).Register(mux)
	service.NewInsightService(insight.NewRequester(generator)).Register(mux)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Serve the built frontend for everything that is not an API route.
	staticDir, err := filepath.Abs(cfg.Server.StaticDir)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			// SPA-style fallback: unknown paths get index.html so the
			// frontend router can take over.
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// h2c allows HTTP/2 without TLS for local and reverse-proxied setups.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Dashboard server starting", "address", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
