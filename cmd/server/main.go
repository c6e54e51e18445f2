package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/shreesh-mishra-24/expense-splitter/internal/config"
	"github.com/shreesh-mishra-24/expense-splitter/internal/middleware"
	"github.com/shreesh-mishra-24/expense-splitter/internal/server"
	"github.com/shreesh-mishra-24/expense-splitter/internal/service"
	"github.com/shreesh-mishra-24/expense-splitter/internal/storage/sqlite"
	"github.com/shreesh-mishra-24/expense-splitter/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	groups := service.NewGroupService(store)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", server.NewHandler(groups))

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// h2c allows HTTP/2 without TLS behind a terminating proxy.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
