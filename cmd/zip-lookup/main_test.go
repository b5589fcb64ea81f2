package main

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/zip-lookup/internal/config"
	"github.com/ytget/zip-lookup/internal/lookup"
	"github.com/ytget/zip-lookup/internal/render"
)

func newPostalServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/us/90210":
			_, _ = w.Write([]byte(`{"post code": "90210", "country": "United States", "country abbreviation": "US",
				"places": [{"place name": "Beverly Hills", "longitude": "-118.4065", "state": "California",
				"state abbreviation": "CA", "latitude": "34.0901"}]}`))
		case "/us/50000":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunPrintsTable(t *testing.T) {
	server := newPostalServer(t)
	svc := lookup.NewService(server.URL, 0)

	var out, errOut bytes.Buffer
	failed := run(context.Background(), svc, render.DefaultMessages(), t.TempDir(), []string{"90210"}, &out, &errOut)

	assert.Zero(t, failed)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "Zip code 90210\n")
	assert.Contains(t, out.String(), "STATE")
	assert.Contains(t, out.String(), "Beverly Hills")
	assert.Contains(t, out.String(), "34.0901 / -118.4065")
	assert.Contains(t, out.String(), "states/CA.svg"+MissingGraphicSuffix)
}

func TestRunResolvesStateGraphics(t *testing.T) {
	assetDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assetDir, "states"), 0755))
	graphic := filepath.Join(assetDir, "states", "CA.svg")
	require.NoError(t, os.WriteFile(graphic, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), 0644))

	server := newPostalServer(t)
	svc := lookup.NewService(server.URL, 0)

	var out, errOut bytes.Buffer
	failed := run(context.Background(), svc, render.DefaultMessages(), assetDir, []string{"90210"}, &out, &errOut)

	assert.Zero(t, failed)
	assert.Contains(t, out.String(), graphic)
	assert.NotContains(t, out.String(), MissingGraphicSuffix)
}

func TestResolveImagesLeavesInputUntouched(t *testing.T) {
	rows := [][]render.Cell{
		{render.HeaderCell(""), render.HeaderCell("State")},
		{render.ImageCell("states/TX.svg"), render.TextCell("Texas")},
	}

	resolved := resolveImages(rows, t.TempDir())

	assert.Equal(t, "states/TX.svg"+MissingGraphicSuffix, resolved[1][0].Image)
	assert.Equal(t, "Texas", resolved[1][1].Text)
	assert.Equal(t, "states/TX.svg", rows[1][0].Image)
}

func TestResolveTimeout(t *testing.T) {
	cfg := config.DefaultFileConfig()
	cfg.API.TimeoutSeconds = 5

	tests := []struct {
		name       string
		override   time.Duration
		overridden bool
		want       time.Duration
		wantErr    bool
	}{
		{"config value when flag absent", 0, false, 5 * time.Second, false},
		{"flag overrides config", 2 * time.Second, true, 2 * time.Second, false},
		{"explicit zero disables", 0, true, 0, false},
		{"negative flag rejected", -5 * time.Second, true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTimeout(cfg, tt.override, tt.overridden)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNegativeTimeout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunFiltersAndSkipsArguments(t *testing.T) {
	server := newPostalServer(t)
	svc := lookup.NewService(server.URL, 0)

	var out, errOut bytes.Buffer
	failed := run(context.Background(), svc, render.DefaultMessages(), t.TempDir(), []string{"123", "9-0-2-1-0"}, &out, &errOut)

	assert.Zero(t, failed)
	assert.Contains(t, errOut.String(), `skipping "123"`)
	require.Contains(t, out.String(), "Zip code 90210")
	assert.NotContains(t, out.String(), "----", "no separator before the first printed result")
}

func TestRunCountsFailures(t *testing.T) {
	server := newPostalServer(t)
	svc := lookup.NewService(server.URL, 0)

	var out, errOut bytes.Buffer
	failed := run(context.Background(), svc, render.DefaultMessages(), t.TempDir(), []string{"00000", "50000"}, &out, &errOut)

	assert.Equal(t, 1, failed, "not found is an answer, a server error is a failure")
	assert.Contains(t, out.String(), "The zip code 00000 does not exist in the United States.")
	assert.Contains(t, out.String(), "Lookup for 50000 failed:")
	assert.Contains(t, out.String(), "----")
}

func TestCommandDoesNotImportGUI(t *testing.T) {
	parsed, err := parser.ParseFile(token.NewFileSet(), "main.go", nil, parser.ImportsOnly)
	require.NoError(t, err)

	for _, imp := range parsed.Imports {
		assert.NotContains(t, imp.Path.Value, "fyne.io/")
		assert.NotContains(t, imp.Path.Value, "/internal/ui")
	}
}
