package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitae/internal/config"
	"vitae/internal/display"
	"vitae/internal/host"
	"vitae/internal/logging"
	"vitae/internal/metrics"
)

func newRunCmd() *cobra.Command {
	var (
		epochInterval time.Duration
		captureRate   float64
		travel        bool
		metricsAddr   string
		headless      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the plugin against a synthetic host",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewComponentLogger("run")

			cfg, err := config.Load(viper.GetString("config"), log)
			if err != nil {
				return err
			}
			if err := overlayTitleTables(cfg); err != nil {
				return err
			}
			opts := optionsFromConfig(cfg)
			if data := viper.GetString("data"); data != "" {
				opts["data_path"] = data
			}
			if travel {
				opts["enable_travel"] = true
			}

			collector := metrics.New()
			plugin := host.New(log, host.WithMetrics(collector))
			plugin.OnLoaded(opts)

			if metricsAddr != "" {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", collector.Handler())
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						log.Error("metrics server: %v", err)
					}
				}()
			}

			if headless {
				return runHeadless(plugin, log, epochInterval, captureRate)
			}

			model := newSimModel(plugin, epochInterval, captureRate)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&epochInterval, "epoch-interval", time.Second, "synthetic epoch period")
	cmd.Flags().Float64Var(&captureRate, "capture-rate", 0.3, "probability of a synthetic capture per epoch")
	cmd.Flags().BoolVar(&travel, "travel", false, "enable the traveler subsystem")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without the terminal UI")
	return cmd
}

// optionsFromConfig re-expresses a loaded Config as the host option map the
// plugin consumes, so run exercises the same OnLoaded path a real host uses.
func optionsFromConfig(cfg *config.Config) map[string]any {
	opts := map[string]any{
		"decay_interval":      cfg.DecayInterval,
		"decay_amount":        cfg.DecayAmount,
		"show_personality":    cfg.ShowPersonality,
		"enable_travel":       cfg.EnableTravel,
		"travel_grid":         cfg.TravelGrid,
		"progress_bar_length": cfg.ProgressBarCells,
		"age_titles":          cfg.AgeTitles,
		"strength_titles":     cfg.StrengthTitles,
		"travel_titles":       cfg.TravelTitles,
		"points_map":          cfg.PointsMap,
		"motivational_quotes": cfg.Quotes,
		"data_path":           cfg.DataPath,
		"log_path":            cfg.AuditLogPath,
		"handshake_dir":       cfg.HandshakeDir,
	}
	for name, pos := range cfg.Positions {
		opts[name+"_x"] = pos.X
		opts[name+"_y"] = pos.Y
	}
	return opts
}

func runHeadless(plugin *host.AgePlugin, log logging.Logger, interval time.Duration, captureRate float64) error {
	view := &logView{log: log}
	plugin.OnDisplaySetup(view)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		plugin.OnEpoch(view)
		if rng.Float64() < captureRate {
			plugin.OnHandshake(view, syntheticCapture(rng))
		}
		plugin.OnDisplayRefresh(view)
	}
	return nil
}

var (
	simEncryptions = []string{"wpa3", "wpa2", "wpa", "wep", "open"}
	simESSIDs      = []string{"CoffeeShack", "linksys", "HomeNet-5G", "eduroam", "FreeWifi", "Pretzel"}
	simVendors     = []string{"de:ad:be", "aa:bb:cc", "10:20:30", "f4:f5:e8"}
	simChannels    = []int{1, 6, 11, 36, 44, 149, 201}
)

func syntheticCapture(rng *rand.Rand) map[string]any {
	return map[string]any{
		"encryption": simEncryptions[rng.Intn(len(simEncryptions))],
		"essid":      simESSIDs[rng.Intn(len(simESSIDs))],
		"bssid": fmt.Sprintf("%s:%02x:%02x:%02x", simVendors[rng.Intn(len(simVendors))],
			rng.Intn(256), rng.Intn(256), rng.Intn(256)),
		"channel": simChannels[rng.Intn(len(simChannels))],
	}
}

// logView satisfies host.View by writing everything to the logger.
type logView struct {
	log logging.Logger
}

func (v *logView) AddWidget(name, label, value string, pos config.Position) {
	v.log.Debug("widget %s (%s) at %d,%d = %s", name, label, pos.X, pos.Y, value)
}

func (v *logView) SetWidget(name, value string) {
	v.log.Debug("widget %s = %s", name, value)
}

func (v *logView) SetMood(mood display.Mood) {}

func (v *logView) SetStatus(status string) {
	v.log.Info("status: %s", status)
}
