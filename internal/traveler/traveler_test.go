package traveler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitae/internal/geo"
)

func TestBand(t *testing.T) {
	tests := []struct {
		channel int
		want    string
	}{
		{1, "2.4"},
		{6, "2.4"},
		{14, "2.4"},
		{15, "unknown"},
		{31, "unknown"},
		{32, "5"},
		{36, "5"},
		{149, "5"},
		{173, "5"},
		{174, "unknown"},
		{192, "6"},
		{233, "6"},
		{250, "6"},
		{251, "unknown"},
		{0, "unknown"},
		{-3, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.channel), "channel %d", tt.channel)
	}
}

func TestVendorPrefix(t *testing.T) {
	assert.Equal(t, "de:ad:be", VendorPrefix("DE:AD:BE:EF:00:01"))
	assert.Equal(t, "aa:bb:cc", VendorPrefix("aa:bb:cc:dd:ee:ff"))
	assert.Empty(t, VendorPrefix("aa:bb"))
	assert.Empty(t, VendorPrefix(""))
}

func TestFingerprintPrefersGPSFix(t *testing.T) {
	fix := &geo.Position{Lat: 52.51672, Lon: 13.37788}
	got := Fingerprint(fix, 0.01, "de:ad:be", "2.4", 6)
	assert.Equal(t, "52.5200,13.3800", got)

	fallback := Fingerprint(nil, 0.01, "de:ad:be", "2.4", 6)
	assert.Equal(t, "de:ad:be-2.4-6", fallback)
}

func TestRecordAwardsXPOncePerIdentifier(t *testing.T) {
	st := &State{}
	obs := Observation{ESSID: "CoffeeShack", BSSID: "DE:AD:BE:EF:00:01", Channel: 6}
	thresholds := []int{50, 150}

	res := st.Record(obs, nil, 0.01, thresholds)
	// 5 (essid) + 2 (bssid) + 3 (vendor) + 1 (channel) + 3 (band) + 10 (place)
	assert.Equal(t, 24, res.XP)
	assert.True(t, res.NewPlace)
	assert.Equal(t, "de:ad:be-2.4-6", res.Place)
	assert.Equal(t, res.Place, st.LastPlace)

	replay := st.Record(obs, nil, 0.01, thresholds)
	assert.Zero(t, replay.XP, "replaying the same capture earns nothing")
	assert.False(t, replay.NewPlace)
	assert.Equal(t, 24, st.XP)
}

func TestRecordPartialNovelty(t *testing.T) {
	st := &State{}
	thresholds := []int{50}
	st.Record(Observation{ESSID: "net-a", BSSID: "de:ad:be:00:00:01", Channel: 6}, nil, 0.01, thresholds)

	// Same vendor, channel, and band; new essid, bssid, and place (the
	// fallback fingerprint includes the channel, which is unchanged, so the
	// place repeats too).
	res := st.Record(Observation{ESSID: "net-b", BSSID: "de:ad:be:00:00:02", Channel: 6}, nil, 0.01, thresholds)
	assert.Equal(t, XPNewESSID+XPNewBSSID, res.XP)
}

func TestRecordLevelUp(t *testing.T) {
	st := &State{}
	thresholds := []int{10, 30}

	res := st.Record(Observation{ESSID: "a", BSSID: "aa:bb:cc:00:00:01", Channel: 1}, nil, 0, thresholds)
	require.Equal(t, 24, res.XP)
	assert.Equal(t, 0, res.Level, "24 XP crosses one threshold: level stays 0")
	assert.False(t, res.LeveledUp)

	res = st.Record(Observation{ESSID: "b", BSSID: "11:22:33:00:00:01", Channel: 36}, nil, 0, thresholds)
	assert.Equal(t, 1, res.Level, "48 XP crosses both thresholds")
	assert.True(t, res.LeveledUp)
}

func TestLevelFor(t *testing.T) {
	thresholds := []int{50, 150, 350}
	assert.Equal(t, 0, LevelFor(0, thresholds))
	assert.Equal(t, 0, LevelFor(49, thresholds))
	assert.Equal(t, 0, LevelFor(50, thresholds))
	assert.Equal(t, 1, LevelFor(150, thresholds))
	assert.Equal(t, 2, LevelFor(350, thresholds))
	assert.Equal(t, 2, LevelFor(99999, thresholds))
	assert.Equal(t, 0, LevelFor(10, nil))
}

func TestThresholdsSorted(t *testing.T) {
	got := Thresholds(map[int]string{350: "c", 50: "a", 150: "b"})
	assert.Equal(t, []int{50, 150, 350}, got)
}
