package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ytget/zip-lookup/internal/config"
	"github.com/ytget/zip-lookup/internal/lookup"
	"github.com/ytget/zip-lookup/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.zip-lookup"
	AppName = "ZIP Lookup"

	WindowWidth  = 800
	WindowHeight = 600

	// MetricsAddrEnvVar enables the Prometheus endpoint when set, e.g. ":9090"
	MetricsAddrEnvVar = "ZIP_LOOKUP_METRICS_ADDR"
)

func main() {
	// Log version information
	fmt.Printf("ZIP Lookup v%s starting...\n", version)

	if addr := os.Getenv(MetricsAddrEnvVar); addr != "" {
		go serveMetrics(addr)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLookupTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	lookupSvc := lookup.NewService(settings.GetAPIBaseURL(), settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, lookupSvc)

	// Show and run
	myWindow.ShowAndRun()
}

// serveMetrics exposes lookup counters on addr/metrics
func serveMetrics(addr string) {
	debugMux := http.NewServeMux()
	debugMux.Handle("/metrics", promhttp.Handler())
	log.Printf("Serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, debugMux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}
