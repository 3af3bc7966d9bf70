package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPMetadataFromMap(t *testing.T) {
	meta, err := ParseAPMetadata(map[string]any{
		"encryption": "WPA2",
		"essid":      "CoffeeShack",
		"bssid":      "DE:AD:BE:EF:00:01",
		"channel":    6,
	})
	require.NoError(t, err)
	assert.Equal(t, "WPA2", meta.Encryption)
	assert.Equal(t, "CoffeeShack", meta.ESSID)
	assert.Equal(t, "de:ad:be:ef:00:01", meta.BSSID, "hardware address is lowercased")
	assert.Equal(t, 6, meta.ChannelNumber())
}

func TestParseAPMetadataDefaults(t *testing.T) {
	meta, err := ParseAPMetadata(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "unknown", meta.ESSID)
	assert.Empty(t, meta.Encryption)
	assert.Zero(t, meta.ChannelNumber())
}

func TestParseAPMetadataChannelShapes(t *testing.T) {
	for _, channel := range []any{"11", 11, int64(11), float64(11)} {
		meta, err := ParseAPMetadata(map[string]any{"channel": channel})
		require.NoError(t, err)
		assert.Equal(t, 11, meta.ChannelNumber(), "channel %T", channel)
	}
}

func TestParseAPMetadataRejectsWrongShape(t *testing.T) {
	for _, payload := range []any{nil, 42, "ap", []string{"essid"}, (*APMetadata)(nil)} {
		_, err := ParseAPMetadata(payload)
		assert.Error(t, err, "payload %T should be rejected", payload)
	}
}

func TestParseAPMetadataPassthrough(t *testing.T) {
	want := APMetadata{Encryption: "wep", ESSID: "x", BSSID: "aa:bb:cc:dd:ee:ff", Channel: "3"}
	got, err := ParseAPMetadata(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ParseAPMetadata(&want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
