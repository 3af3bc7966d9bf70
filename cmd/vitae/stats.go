package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitae/internal/config"
	"vitae/internal/display"
	"vitae/internal/logging"
	"vitae/internal/progression"
	"vitae/internal/store"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the persisted progression state",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Nop()
			cfg, err := config.Load(viper.GetString("config"), log)
			if err != nil {
				return err
			}
			if err := overlayTitleTables(cfg); err != nil {
				return err
			}
			if data := viper.GetString("data"); data != "" {
				cfg.DataPath = data
			}

			st := progression.NewState()
			if err := store.New(cfg.DataPath, log).Load(st); err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()
			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			w := display.Snapshot(st, cfg)
			fmt.Printf("%s %s (%d epochs)\n", bold("Age:"), cyan(w.Age), st.Epochs)
			fmt.Printf("%s %s (%d train epochs)\n", bold("Strength:"), cyan(w.Strength), st.TrainEpochs)
			fmt.Printf("%s %s  %s %d\n", bold("Points:"), green(w.Points), bold("Streak:"), st.Streak)
			fmt.Printf("%s %d  %s %d\n", bold("Handshakes:"), st.Handshakes, bold("Night-owl:"), st.NightOwlHandshakes)
			fmt.Printf("%s %s\n", bold("Progress:"), w.Progress)
			fmt.Printf("%s %s (aggro %d / stealth %d / scholar %d)\n", bold("Trait:"),
				yellow(display.DominantPersonality(st)),
				st.PersonalityAggro, st.PersonalityStealth, st.PersonalityScholar)
			if kinds := st.EncTypesCaptured.Values(); len(kinds) > 0 {
				fmt.Printf("%s %v\n", bold("Encryption kinds:"), kinds)
			}
			if ev := st.ActiveEvent; ev != nil {
				fmt.Printf("%s %s (%.1fx, %d uses left)\n", bold("Active event:"), ev.Description, ev.Multiplier, ev.UsesLeft)
			}
			if t := st.Travel; t != nil {
				title := progression.ResolveTitle(t.XP, cfg.TravelTitles, progression.FloorTravelTitle)
				fmt.Printf("%s %s, level %d (%d XP, %d places)\n", bold("Traveler:"),
					cyan(title), t.Level, t.XP, t.Places.Len())
			}
			return nil
		},
	}
}
