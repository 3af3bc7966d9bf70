package config

import (
	"strconv"
	"strings"

	"vitae/internal/logging"
)

// Position is an (x, y) screen coordinate for a display widget.
type Position struct {
	X int `mapstructure:"x" yaml:"x"`
	Y int `mapstructure:"y" yaml:"y"`
}

// Config carries every recognized option with documented defaults. It is
// populated once at startup, either from the host's key-value option map
// or from a config file, and treated as read-only afterwards.
type Config struct {
	// DecayInterval is the number of inactive epochs before decay fires.
	DecayInterval int
	// DecayAmount is the base points removed per decay interval elapsed.
	DecayAmount int

	// Title tables map counter thresholds to labels.
	AgeTitles      map[int]string
	StrengthTitles map[int]string
	TravelTitles   map[int]string

	// PointsMap maps lowercased encryption labels to base reward points.
	PointsMap map[string]int

	// Quotes shown when no context-specific message applies.
	Quotes []string

	// ShowPersonality toggles the dominant-trait widget. Off by default
	// to keep the display clean.
	ShowPersonality bool

	// ProgressBarCells is the number of cells inside the progress bar,
	// clamped to [1, 20].
	ProgressBarCells int

	// EnableTravel switches on the novelty/traveler subsystem.
	EnableTravel bool
	// TravelGrid is the quantization grid, in degrees, for place
	// fingerprints.
	TravelGrid float64

	// Positions holds per-widget screen coordinates keyed by widget name
	// (age, strength, points, progress, personality, travel).
	Positions map[string]Position

	// DataPath is the persisted-state file; AuditLogPath the append-only
	// capture log; HandshakeDir the directory whose .pcap count seeds the
	// handshake counter.
	DataPath     string
	AuditLogPath string
	HandshakeDir string
}

// Default returns the configuration the plugin runs with when the host
// supplies no options.
func Default() *Config {
	return &Config{
		DecayInterval:    50,
		DecayAmount:      10,
		AgeTitles:        DefaultAgeTitles(),
		StrengthTitles:   DefaultStrengthTitles(),
		TravelTitles:     DefaultTravelTitles(),
		PointsMap:        DefaultPointsMap(),
		Quotes:           DefaultQuotes(),
		ShowPersonality:  false,
		ProgressBarCells: 5,
		EnableTravel:     false,
		TravelGrid:       0.01,
		Positions:        DefaultPositions(),
		DataPath:         "/root/age_strength.json",
		AuditLogPath:     "/root/network_points.log",
		HandshakeDir:     "/home/pi/handshakes",
	}
}

// FromMap overlays the host's key-value options onto defaults. Unrecognized
// keys are ignored; values that fail coercion keep their defaults so a
// broken config entry never takes the plugin down.
func FromMap(opts map[string]any, log logging.Logger) *Config {
	log = logging.OrNop(log)
	cfg := Default()
	if opts == nil {
		return cfg
	}

	intOpt(opts, "decay_interval", &cfg.DecayInterval, log)
	intOpt(opts, "decay_amount", &cfg.DecayAmount, log)
	boolOpt(opts, "show_personality", &cfg.ShowPersonality, log)
	boolOpt(opts, "enable_travel", &cfg.EnableTravel, log)
	floatOpt(opts, "travel_grid", &cfg.TravelGrid, log)
	stringOpt(opts, "data_path", &cfg.DataPath, log)
	stringOpt(opts, "log_path", &cfg.AuditLogPath, log)
	stringOpt(opts, "handshake_dir", &cfg.HandshakeDir, log)

	if v, ok := opts["progress_bar_length"]; ok {
		if n, err := toInt(v); err == nil {
			cfg.ProgressBarCells = n
		} else {
			log.Warn("config: progress_bar_length %v ignored: %v", v, err)
		}
	}
	cfg.ProgressBarCells = clamp(cfg.ProgressBarCells, 1, 20)

	titleOpt(opts, "age_titles", &cfg.AgeTitles, log)
	titleOpt(opts, "strength_titles", &cfg.StrengthTitles, log)
	titleOpt(opts, "travel_titles", &cfg.TravelTitles, log)

	if v, ok := opts["points_map"]; ok {
		if m, err := toStringIntMap(v); err == nil {
			cfg.PointsMap = m
		} else {
			log.Warn("config: points_map ignored: %v", err)
		}
	}
	if v, ok := opts["motivational_quotes"]; ok {
		if q, err := toStringSlice(v); err == nil && len(q) > 0 {
			cfg.Quotes = q
		} else if err != nil {
			log.Warn("config: motivational_quotes ignored: %v", err)
		}
	}

	for name := range cfg.Positions {
		pos := cfg.Positions[name]
		intOpt(opts, name+"_x", &pos.X, log)
		intOpt(opts, name+"_y", &pos.Y, log)
		cfg.Positions[name] = pos
	}

	return cfg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intOpt(opts map[string]any, key string, dst *int, log logging.Logger) {
	v, ok := opts[key]
	if !ok {
		return
	}
	n, err := toInt(v)
	if err != nil {
		log.Warn("config: %s %v ignored: %v", key, v, err)
		return
	}
	*dst = n
}

func floatOpt(opts map[string]any, key string, dst *float64, log logging.Logger) {
	v, ok := opts[key]
	if !ok {
		return
	}
	f, err := toFloat(v)
	if err != nil {
		log.Warn("config: %s %v ignored: %v", key, v, err)
		return
	}
	*dst = f
}

func boolOpt(opts map[string]any, key string, dst *bool, log logging.Logger) {
	v, ok := opts[key]
	if !ok {
		return
	}
	switch b := v.(type) {
	case bool:
		*dst = b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			log.Warn("config: %s %q ignored: %v", key, b, err)
			return
		}
		*dst = parsed
	default:
		log.Warn("config: %s has unsupported type %T", key, v)
	}
}

func stringOpt(opts map[string]any, key string, dst *string, log logging.Logger) {
	v, ok := opts[key]
	if !ok {
		return
	}
	s, isString := v.(string)
	if !isString || s == "" {
		log.Warn("config: %s %v ignored", key, v)
		return
	}
	*dst = s
}

func titleOpt(opts map[string]any, key string, dst *map[int]string, log logging.Logger) {
	v, ok := opts[key]
	if !ok {
		return
	}
	m, err := toTitleMap(v)
	if err != nil {
		log.Warn("config: %s ignored: %v", key, err)
		return
	}
	if len(m) > 0 {
		*dst = m
	}
}
