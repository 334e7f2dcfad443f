package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestBuildOutputs(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	got := buildOutputs(ts)
	want := Outputs{
		Composite: "/output/composite.png?t=1700000000123",
		Shadow:    "/output/shadow_only.png?t=1700000000123",
		Mask:      "/output/mask_debug.png?t=1700000000123",
	}
	if got != want {
		t.Fatalf("buildOutputs = %+v, want %+v", got, want)
	}
}

func TestBuildOutputsOnlyTimestampChanges(t *testing.T) {
	t1 := time.UnixMilli(1000)
	t2 := time.UnixMilli(98765)
	a, b := buildOutputs(t1).Images(), buildOutputs(t2).Images()
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("want 3 images, got %d and %d", len(a), len(b))
	}
	for i := range a {
		ua, err := url.Parse(a[i].URL)
		if err != nil {
			t.Fatal(err)
		}
		ub, err := url.Parse(b[i].URL)
		if err != nil {
			t.Fatal(err)
		}
		if ua.Path != ub.Path {
			t.Errorf("%s: path changed %q -> %q", a[i].ID, ua.Path, ub.Path)
		}
		if got := ua.Query().Get("t"); got != strconv.FormatInt(t1.UnixMilli(), 10) {
			t.Errorf("%s: t=%q", a[i].ID, got)
		}
		if got := ub.Query().Get("t"); got != strconv.FormatInt(t2.UnixMilli(), 10) {
			t.Errorf("%s: t=%q", b[i].ID, got)
		}
		if len(ub.Query()) != 1 {
			t.Errorf("%s: unexpected query %q", b[i].ID, ub.RawQuery)
		}
	}
}

func TestBuildOutputsUsesOutputPaths(t *testing.T) {
	p := outputPaths()
	if len(p) != 3 {
		t.Fatalf("outputPaths = %v", p)
	}
	o := buildOutputs(time.UnixMilli(7))
	for key, got := range map[string]string{"composite": o.Composite, "shadow": o.Shadow, "mask": o.Mask} {
		if want := p[key] + "?t=7"; got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestImagesOrder(t *testing.T) {
	imgs := buildOutputs(time.UnixMilli(1)).Images()
	ids := []string{"imgComposite", "imgShadow", "imgMask"}
	titles := []string{"composite.png", "shadow_only.png", "mask_debug.png"}
	for i, img := range imgs {
		if img.ID != ids[i] || img.Title != titles[i] {
			t.Errorf("image %d = %s/%s, want %s/%s", i, img.ID, img.Title, ids[i], titles[i])
		}
	}
}

func TestCheckOutputDir(t *testing.T) {
	dir := t.TempDir()
	if err := checkOutputDir(dir); err != nil {
		t.Fatalf("existing dir: %v", err)
	}
	if err := checkOutputDir(filepath.Join(dir, "nope")); err == nil {
		t.Fatal("missing dir: want error")
	}
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := checkOutputDir(file); err == nil {
		t.Fatal("regular file: want error")
	}
}

func TestMissingOutputs(t *testing.T) {
	dir := t.TempDir()
	if got := missingOutputs(dir); len(got) != 3 {
		t.Fatalf("empty dir: missing = %v", got)
	}
	writeFile(t, dir, shadowFile, "png")
	got := missingOutputs(dir)
	if len(got) != 2 || got[0] != compositeFile || got[1] != maskFile {
		t.Fatalf("missing = %v", got)
	}
}

func TestOutputHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, compositeFile, "composite-bytes")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	h := outputHandler(dir)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"file with cache buster", "/output/composite.png?t=123", http.StatusOK, "composite-bytes"},
		{"file without query", "/output/composite.png", http.StatusOK, "composite-bytes"},
		{"missing file", "/output/mask_debug.png?t=1", http.StatusNotFound, ""},
		{"listing", "/output/", http.StatusNotFound, ""},
		{"sub listing", "/output/sub/", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}
			if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
				t.Errorf("Cache-Control = %q", got)
			}
			body, _ := io.ReadAll(rec.Body)
			if string(body) != tt.body {
				t.Errorf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
