package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Fixed locations written by the shadow generator.
const (
	outputPrefix = "/output/"

	compositeFile = "composite.png"
	shadowFile    = "shadow_only.png"
	maskFile      = "mask_debug.png"
)

var outputFiles = []string{compositeFile, shadowFile, maskFile}

// Outputs holds the cache-busted image URLs for one render or refresh.
type Outputs struct {
	Composite string
	Shadow    string
	Mask      string
}

// OutputImage is one card on the viewer page.
type OutputImage struct {
	Title string // file name shown above the image
	ID    string // img element id
	Alt   string
	URL   string
}

// outputPaths maps each output to its URL path without the cache buster.
// The page script builds its refresh URLs from the same map.
func outputPaths() map[string]string {
	return map[string]string{
		"composite": outputPrefix + compositeFile,
		"shadow":    outputPrefix + shadowFile,
		"mask":      outputPrefix + maskFile,
	}
}

// buildOutputs stamps every output path with ts in unix milliseconds.
func buildOutputs(ts time.Time) Outputs {
	t := "?t=" + strconv.FormatInt(ts.UnixMilli(), 10)
	p := outputPaths()
	return Outputs{
		Composite: p["composite"] + t,
		Shadow:    p["shadow"] + t,
		Mask:      p["mask"] + t,
	}
}

// Images returns the three cards in display order.
func (o Outputs) Images() []OutputImage {
	return []OutputImage{
		{Title: compositeFile, ID: "imgComposite", Alt: "composite", URL: o.Composite},
		{Title: shadowFile, ID: "imgShadow", Alt: "shadow only", URL: o.Shadow},
		{Title: maskFile, ID: "imgMask", Alt: "mask debug", URL: o.Mask},
	}
}

// checkOutputDir reports whether dir can be served as the output directory.
func checkOutputDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "output dir %q", dir)
	}
	if !fi.IsDir() {
		return errors.Errorf("output dir %q is not a directory", dir)
	}
	return nil
}

// missingOutputs lists the expected files not yet written to dir.
func missingOutputs(dir string) []string {
	missing := []string{}
	for _, name := range outputFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func logMissingOutputs(dir string) {
	for _, name := range missingOutputs(dir) {
		log.Printf("hint: %s not found in %s yet; run the generator, then Refresh Images", name, dir)
	}
}

// ── Static output files ───────────────────────────────────────────────────────

// outputHandler serves files from dir under /output/. The ?t= query is only
// there to defeat browser caches and is ignored here.
func outputHandler(dir string) http.Handler {
	fs := http.StripPrefix(strings.TrimSuffix(outputPrefix, "/"), http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		fs.ServeHTTP(w, r)
	})
}
