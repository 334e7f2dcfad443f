// shadow-viewer: browser viewer for the shadow generator's outputs.
// Serves a page showing composite.png, shadow_only.png and mask_debug.png
// from the output directory, with display-only light sliders and a
// cache-busting refresh.
//
// Usage:
//
//	shadow-viewer --out ./output --port 5173
//	shadow-viewer --pick
package main

import (
	"context"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// ── Config ────────────────────────────────────────────────────────────────────

type Config struct {
	Port      int
	OutputDir string
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	return checkOutputDir(c.OutputDir)
}

// Slider defaults.
const (
	defaultAngle = 60
	defaultElev  = 30
)

// ── Rendering ─────────────────────────────────────────────────────────────────

func render(w http.ResponseWriter, tmplStr string, data any) {
	t, err := template.New("page").Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

type viewerPage struct {
	Angle     int
	Elev      int
	Outputs   Outputs
	Paths     map[string]string
	OutputDir string
}

// ── Handlers ──────────────────────────────────────────────────────────────────

func (ws *WebServer) handleViewer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	render(w, tmplViewer, viewerPage{
		Angle:     defaultAngle,
		Elev:      defaultElev,
		Outputs:   buildOutputs(ws.now()),
		Paths:     outputPaths(),
		OutputDir: ws.cfg.OutputDir,
	})
}

// GET /health
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"output_dir": ws.cfg.OutputDir,
		"missing":    missingOutputs(ws.cfg.OutputDir),
	})
}

// ── Main ──────────────────────────────────────────────────────────────────────

func main() {
	port := flag.Int("port", 5173, "HTTP listen port")
	out := flag.String("out", "./output", "directory holding composite.png, shadow_only.png and mask_debug.png")
	pick := flag.Bool("pick", false, "choose the output directory with a native dialog")
	flag.Parse()

	cfg := &Config{Port: *port, OutputDir: *out}
	if *pick {
		dir, err := pickOutputDir(cfg.OutputDir)
		if err != nil {
			log.Fatal(err)
		}
		cfg.OutputDir = dir
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("shadow-viewer on :%d  out=%s", cfg.Port, cfg.OutputDir)
	logMissingOutputs(cfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ws := NewWebServer(cfg, time.Now)
	if err := ws.Start(ctx); err != nil {
		log.Fatal(err)
	}
}
