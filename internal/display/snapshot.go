package display

import (
	"vitae/internal/config"
	"vitae/internal/progression"
)

// Widgets is the full set of display values for one refresh.
type Widgets struct {
	Age         string
	Strength    string
	Points      string
	Progress    string
	Personality string
	Travel      string
}

// Snapshot derives every widget value from the current state.
func Snapshot(st *progression.State, cfg *config.Config) Widgets {
	w := Widgets{
		Age:      progression.ResolveTitle(st.Epochs, cfg.AgeTitles, progression.FloorAgeTitle),
		Strength: progression.ResolveTitle(st.TrainEpochs, cfg.StrengthTitles, progression.FloorStrengthTitle),
		Points:   AbbrevNumber(st.Points),
		Progress: ageProgressBar(st, cfg),
	}
	if cfg.ShowPersonality {
		w.Personality = DominantPersonality(st)
	}
	if cfg.EnableTravel && st.Travel != nil {
		title := progression.ResolveTitle(st.Travel.XP, cfg.TravelTitles, progression.FloorTravelTitle)
		w.Travel = title + " L" + AbbrevNumber(st.Travel.Level)
	}
	return w
}

func ageProgressBar(st *progression.State, cfg *config.Config) string {
	next, ok := progression.NextThreshold(st.Epochs, cfg.AgeTitles)
	if !ok {
		return MaxLevelBar
	}
	return ProgressBar(float64(st.Epochs)/float64(next), cfg.ProgressBarCells)
}
