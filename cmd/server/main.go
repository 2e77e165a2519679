package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/glidefleet/intake/config"
	"github.com/glidefleet/intake/pkg/auth"
	"github.com/glidefleet/intake/pkg/otel"
	"github.com/glidefleet/intake/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version string

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	if err := otel.Setup("intake", version); err != nil {
		slog.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	address := cfg.Address

	if *addressFlag != "" {
		address = *addressFlag
	}

	handler, err := api.New(cfg)

	if err != nil {
		slog.Error("failed to create handler", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/v1", func(r chi.Router) {
		if providers := cfg.Authenticators(); len(providers) > 0 {
			r.Use(authenticate(providers))
		}

		handler.Attach(r)
	})

	slog.Info("starting server", "address", address)

	if err := http.ListenAndServe(address, otelhttp.NewHandler(r, "server")); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// authenticate accepts a request when any configured provider does.
func authenticate(providers []auth.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range providers {
				ctx, err := p.Authenticate(r.Context(), r)

				if err != nil {
					continue
				}

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}
}
