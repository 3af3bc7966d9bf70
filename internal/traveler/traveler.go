// Package traveler tracks novelty: previously unseen networks, hardware,
// channels, bands, and coarse places each earn one-time travel XP.
package traveler

import (
	"fmt"
	"sort"
	"strings"

	"vitae/internal/geo"
	"vitae/internal/types"
)

// XP awarded the first time a value shows up in each category.
const (
	XPNewESSID   = 5
	XPNewBSSID   = 2
	XPNewVendor  = 3
	XPNewChannel = 1
	XPNewBand    = 3
	XPNewPlace   = 10
)

// State is the persisted traveler sub-aggregate. Sets only ever grow.
type State struct {
	XP        int             `json:"xp"`
	Level     int             `json:"level"`
	ESSIDs    types.StringSet `json:"essids"`
	BSSIDs    types.StringSet `json:"bssids"`
	Vendors   types.StringSet `json:"ouis"`
	Channels  types.StringSet `json:"channels"`
	Bands     types.StringSet `json:"bands"`
	Places    types.StringSet `json:"places"`
	LastPlace string          `json:"last_place"`
}

// Observation is the slice of capture metadata the tracker cares about.
type Observation struct {
	ESSID   string
	BSSID   string
	Channel int
}

// Result reports what a single observation earned.
type Result struct {
	XP        int
	Place     string
	NewPlace  bool
	Level     int
	LeveledUp bool
}

// Band derives the frequency band label from a channel number.
func Band(channel int) string {
	switch {
	case channel >= 1 && channel <= 14:
		return "2.4"
	case channel >= 32 && channel <= 173:
		return "5"
	case channel-191 >= 1 && channel-191 <= 59:
		return "6"
	default:
		return "unknown"
	}
}

// VendorPrefix returns the OUI, the first three octets of a colon-separated
// hardware address, or "" when the address is too short.
func VendorPrefix(bssid string) string {
	parts := strings.Split(strings.ToLower(bssid), ":")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:3], ":")
}

// Fingerprint summarizes a location as a coarse string key: a quantized
// lat/lon cell when a GPS fix is available, otherwise a Wi-Fi-derived
// vendor-band-channel proxy.
func Fingerprint(fix *geo.Position, grid float64, vendor, band string, channel int) string {
	if fix != nil {
		return fmt.Sprintf("%.4f,%.4f", geo.Quantize(fix.Lat, grid), geo.Quantize(fix.Lon, grid))
	}
	return fmt.Sprintf("%s-%s-%d", vendor, band, channel)
}

// Record awards XP for every category of obs not seen before, updates the
// place fingerprint, and recomputes the travel level against thresholds.
func (s *State) Record(obs Observation, fix *geo.Position, grid float64, thresholds []int) Result {
	var res Result

	if obs.ESSID != "" && s.ESSIDs.Add(obs.ESSID) {
		res.XP += XPNewESSID
	}
	bssid := strings.ToLower(obs.BSSID)
	if bssid != "" && s.BSSIDs.Add(bssid) {
		res.XP += XPNewBSSID
	}
	vendor := VendorPrefix(bssid)
	if vendor != "" && s.Vendors.Add(vendor) {
		res.XP += XPNewVendor
	}
	if s.Channels.Add(fmt.Sprintf("%d", obs.Channel)) {
		res.XP += XPNewChannel
	}
	band := Band(obs.Channel)
	if s.Bands.Add(band) {
		res.XP += XPNewBand
	}

	res.Place = Fingerprint(fix, grid, vendor, band, obs.Channel)
	if s.Places.Add(res.Place) {
		res.XP += XPNewPlace
		res.NewPlace = true
		s.LastPlace = res.Place
	}

	prev := s.Level
	s.XP += res.XP
	s.Level = LevelFor(s.XP, thresholds)
	res.Level = s.Level
	res.LeveledUp = s.Level > prev
	return res
}

// LevelFor counts how many thresholds the XP total has crossed, minus one,
// clamped at zero.
func LevelFor(xp int, thresholds []int) int {
	sorted := append([]int(nil), thresholds...)
	sort.Ints(sorted)
	crossed := 0
	for _, t := range sorted {
		if xp >= t {
			crossed++
		}
	}
	if crossed <= 0 {
		return 0
	}
	return crossed - 1
}

// Thresholds extracts the sorted threshold keys of a title table.
func Thresholds(titles map[int]string) []int {
	out := make([]int, 0, len(titles))
	for t := range titles {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
