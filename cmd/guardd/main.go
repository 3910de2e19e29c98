// Command guardd runs a small validation service over the built-in guard
// registry: POST a JSON value to /check/{guard} and get the structured
// validation result back.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/guardkit/binder"
	"github.com/dmitrymomot/guardkit/guard"
)

type config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse config", slog.Any("error", err))
		os.Exit(1)
	}

	log := newLogger(cfg.LogFormat)
	registry := guard.Builtin()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/guards", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, registry.Names())
	})

	r.Post("/check/{guard}", func(w http.ResponseWriter, req *http.Request) {
		name, err := binder.Check(req, binder.Path("guard"), guard.String)
		if err != nil {
			binder.WriteError(w, err)
			return
		}

		pred, ok := registry.Get(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown guard"})
			return
		}

		raw, err := binder.JSONBody().Extract(req)
		if err != nil {
			binder.WriteError(w, err)
			return
		}

		result := pred.Validate(raw)
		log.Info("checked value",
			slog.String("guard", name),
			slog.Bool("ok", result.Ok()),
		)
		writeJSON(w, http.StatusOK, result)
	})

	r.Get("/email", func(w http.ResponseWriter, req *http.Request) {
		address, err := binder.Check(req, binder.Query("value"), guard.Email)
		if err != nil {
			binder.WriteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"email": address})
	})

	log.Info("listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(h)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
