package geo

import (
	"encoding/json"
	"math"
	"os"

	"vitae/internal/logging"
)

// Position is a decoded GPS fix.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DefaultCandidatePaths are probed in order for a GPS fix written by
// companion tooling. The first readable, well-formed file wins.
var DefaultCandidatePaths = []string{
	"/etc/vitae/gps.json",
	"/root/.gps.json",
	"/tmp/vitae-gps.json",
}

// Source reads an optional external GPS file. A missing or malformed file
// is treated as "no fix"; the caller falls back to a Wi-Fi-derived
// fingerprint.
type Source struct {
	paths []string
	log   logging.Logger
}

// NewSource builds a source over the given candidate paths, or the
// defaults when none are given.
func NewSource(log logging.Logger, paths ...string) *Source {
	if len(paths) == 0 {
		paths = DefaultCandidatePaths
	}
	return &Source{paths: paths, log: logging.OrNop(log)}
}

// Read returns the current fix, or nil when no candidate file yields one.
func (s *Source) Read() *Position {
	for _, path := range s.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var pos Position
		if err := json.Unmarshal(data, &pos); err != nil {
			s.log.Warn("geo: malformed fix in %s: %v", path, err)
			continue
		}
		if pos.Lat == 0 && pos.Lon == 0 {
			continue
		}
		return &pos
	}
	return nil
}

// Quantize snaps a coordinate to the nearest multiple of grid degrees,
// coarsening a fix into a privacy-preserving cell.
func Quantize(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}
