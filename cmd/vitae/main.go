package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitae/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "vitae",
		Short: "Progression add-on for an agent host",
		Long: "vitae tracks a persistent player-progression model (age and strength\n" +
			"titles, points, streaks, achievements, traveler XP) and renders it as\n" +
			"small status widgets. The run command drives the plugin with a\n" +
			"synthetic host for development; in production the plugin is embedded\n" +
			"in the hosting agent.",
	}

	root.PersistentFlags().String("config", "", "config file (toml, yaml, or json)")
	root.PersistentFlags().String("data", "", "state file path (overrides config)")
	root.PersistentFlags().String("age-titles", "", "YAML threshold->label file replacing the age titles")
	root.PersistentFlags().String("strength-titles", "", "YAML threshold->label file replacing the strength titles")
	root.PersistentFlags().String("travel-titles", "", "YAML threshold->label file replacing the travel titles")
	for _, name := range []string{"config", "data", "age-titles", "strength-titles", "travel-titles"} {
		_ = viper.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newStatsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// overlayTitleTables swaps the configured title maps for files named by the
// --age-titles style flags.
func overlayTitleTables(cfg *config.Config) error {
	for _, o := range []struct {
		flag string
		dst  *map[int]string
	}{
		{"age-titles", &cfg.AgeTitles},
		{"strength-titles", &cfg.StrengthTitles},
		{"travel-titles", &cfg.TravelTitles},
	} {
		path := viper.GetString(o.flag)
		if path == "" {
			continue
		}
		table, err := config.LoadTitleTable(path)
		if err != nil {
			return err
		}
		*o.dst = table
	}
	return nil
}
