package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitae/internal/logging"
	"vitae/internal/progression"
	"vitae/internal/traveler"
	"vitae/internal/types"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "age_strength.json")

	st := progression.NewState()
	st.Epochs = 1234
	st.TrainEpochs = 123
	st.Points = 456
	st.Handshakes = 78
	st.LastActiveEpoch = 1200
	st.Streak = 3
	st.PrevAgeTitle = "Cipher Teen"
	st.PrevStrengthTitle = "Hash Hunter"
	st.NightOwlHandshakes = 4
	st.EncTypesCaptured = types.NewStringSet("wpa2", "wep")
	st.PersonalityAggro = 78
	st.PersonalityScholar = 12
	st.ActiveEvent = &progression.BonusEvent{
		ID:          "ev-1",
		Description: "Lucky Break",
		Multiplier:  2.0,
		UsesLeft:    3,
	}
	st.Travel = &traveler.State{
		XP:        90,
		Level:     1,
		ESSIDs:    types.NewStringSet("CoffeeShack"),
		BSSIDs:    types.NewStringSet("de:ad:be:ef:00:01"),
		Vendors:   types.NewStringSet("de:ad:be"),
		Channels:  types.NewStringSet("6"),
		Bands:     types.NewStringSet("2.4"),
		Places:    types.NewStringSet("de:ad:be-2.4-6"),
		LastPlace: "de:ad:be-2.4-6",
	}

	s := New(path, logging.Nop())
	require.NoError(t, s.Save(st))

	// A fresh store and state, so data must come from disk.
	loaded := progression.NewState()
	require.NoError(t, New(path, logging.Nop()).Load(loaded))

	assert.Equal(t, st, loaded)
}

func TestStoreSaveUsesTwoSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := New(path, logging.Nop())
	require.NoError(t, s.Save(progression.NewState()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"epochs\""), "expected 2-space indentation")
}

func TestStoreLoadMissingFileKeepsDefaults(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), logging.Nop())
	st := progression.NewState()
	require.NoError(t, s.Load(st))
	assert.Zero(t, st.Epochs)
	assert.Equal(t, progression.FloorAgeTitle, st.PrevAgeTitle)
}

func TestStoreLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	legacy := map[string]any{
		"epochs":            42,
		"points":            7,
		"travel_grid_cells": 99,          // dropped option from an old build
		"nomad_routes":      []string{"x"}, // likewise
	}
	data, err := json.MarshalIndent(legacy, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	st := progression.NewState()
	require.NoError(t, New(path, logging.Nop()).Load(st))
	assert.Equal(t, 42, st.Epochs)
	assert.Equal(t, 7, st.Points)
}

func TestStoreLoadMalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	st := progression.NewState()
	require.NoError(t, New(path, logging.Nop()).Load(st), "malformed files are absorbed, not fatal")
	assert.Zero(t, st.Epochs)
}

func TestSeedHandshakes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pcap", "b.pcap", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	st := progression.NewState()
	assert.True(t, SeedHandshakes(st, dir))
	assert.Equal(t, 2, st.Handshakes, "only .pcap files count")

	// Nonzero counter is never reseeded.
	st.Handshakes = 5
	assert.False(t, SeedHandshakes(st, dir))
	assert.Equal(t, 5, st.Handshakes)
}

func TestSeedHandshakesMissingDir(t *testing.T) {
	st := progression.NewState()
	assert.False(t, SeedHandshakes(st, filepath.Join(t.TempDir(), "nope")))
	assert.Zero(t, st.Handshakes)
}

func TestAuditLogAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.log")
	audit := NewAuditLog(path)

	at := time.Unix(1700000000, 0)
	require.NoError(t, audit.Append(at, "CoffeeShack", "wpa2", 5))
	require.NoError(t, audit.Append(at.Add(time.Minute), "linksys", "wep", 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1700000000,CoffeeShack,wpa2,5", lines[0])
	assert.Equal(t, "1700000060,linksys,wep,2", lines[1])
}
