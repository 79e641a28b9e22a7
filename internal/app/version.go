package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/healthtrack-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health and the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// buildInfo is a constant 1 gauge labeled with the build metadata.
func buildInfo() prometheus.Collector {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "healthtrack_build_info",
		Help: "Build metadata of the running binary.",
	}, []string{"version", "commit", "built"})
	g.WithLabelValues(Version, Commit, BuildTime).Set(1)
	return g
}
