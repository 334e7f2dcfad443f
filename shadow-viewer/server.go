package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// WebServer serves the viewer page and the generator's output files.
type WebServer struct {
	cfg    *Config
	now    func() time.Time
	server *http.Server
}

// NewWebServer builds a server for cfg. now stamps the image URLs of each
// rendered page.
func NewWebServer(cfg *Config, now func() time.Time) *WebServer {
	ws := &WebServer{cfg: cfg, now: now}
	ws.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           ws.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return ws
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleViewer)
	mux.HandleFunc("/health", ws.handleHealth)
	mux.Handle(outputPrefix, outputHandler(ws.cfg.OutputDir))
	return mux
}

// Start serves until ctx is cancelled, then shuts down.
func (ws *WebServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.Wrap(err, "listen")
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
