package progression

import (
	"math/rand"
	"strings"
	"time"

	"vitae/internal/config"
	"vitae/internal/logging"
	"vitae/internal/types"
)

// Capture is the validated slice of AP metadata the core consumes. The
// host boundary rejects malformed payloads before building one.
type Capture struct {
	Encryption string
	ESSID      string
	BSSID      string
}

// Engine owns a State and evolves it in response to host epochs and
// captures. It performs no I/O; persistence and presentation react to the
// events it returns.
type Engine struct {
	cfg *config.Config
	st  *State
	log logging.Logger

	// Now and Rand are injectable for tests.
	Now  func() time.Time
	Rand *rand.Rand
}

// NewEngine wires an engine over cfg and st.
func NewEngine(cfg *config.Config, st *State, log logging.Logger) *Engine {
	return &Engine{
		cfg:  cfg,
		st:   st,
		log:  logging.OrNop(log),
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// State returns the aggregate the engine mutates.
func (e *Engine) State() *State {
	return e.st
}

// Tick handles one host epoch: advance counters, run decay, detect title
// transitions, and on every 100th epoch roll for a bonus event and emit a
// milestone notice. The caller persists state after every tick.
func (e *Engine) Tick() []Event {
	st := e.st
	st.Epochs++
	if st.Epochs%10 == 0 {
		st.TrainEpochs++
		st.PersonalityScholar++
	}

	var events []Event
	if loss := ApplyDecay(st, st.Epochs, e.cfg.DecayInterval, e.cfg.DecayAmount); loss > 0 {
		e.log.Info("decay removed %d points at epoch %d", loss, st.Epochs)
		events = append(events, Event{Kind: EventDecay, Points: loss})
	}

	events = append(events, e.CheckTitleTransitions()...)

	if st.Epochs%eventCheckInterval == 0 {
		if ev := MaybeTriggerEvent(e.Rand); ev != nil {
			st.ActiveEvent = ev
			e.log.Info("bonus event %s: %s", ev.ID, ev.Description)
			events = append(events, Event{Kind: EventBonusStart, Description: ev.Description})
		}
		events = append(events, Event{Kind: EventMilestone, Points: st.Epochs})
	}

	return events
}

// Capture processes one captured-handshake notification and returns the
// points awarded for it plus any notifications raised along the way.
func (e *Engine) Capture(c Capture) (int, []Event) {
	st := e.st
	enc := strings.ToLower(c.Encryption)

	points, ok := e.cfg.PointsMap[enc]
	if !ok {
		points = 1
	}

	var events []Event

	st.Streak++
	if st.Streak >= streakThreshold {
		points = int(float64(points) * streakMultiplier)
		events = append(events, Event{Kind: EventStreakBonus, Points: points})
	}

	if ev := st.ActiveEvent; ev != nil && ev.UsesLeft > 0 {
		points = int(float64(points) * ev.Multiplier)
		ev.UsesLeft--
		if ev.UsesLeft == 0 {
			st.ActiveEvent = nil
		}
	}

	st.Points += points
	st.Handshakes++
	st.LastActiveEpoch = st.Epochs
	st.LastCaptureEnc = enc
	st.PersonalityAggro++

	if hour := e.Now().Hour(); hour >= 2 && hour < 4 {
		st.NightOwlHandshakes++
		if st.NightOwlHandshakes == nightOwlTarget {
			st.Points += nightOwlBonus
			events = append(events, Event{Kind: EventNightOwl, Points: nightOwlBonus})
		}
	}

	st.EncTypesCaptured.Add(enc)
	if st.EncTypesCaptured.Equal(knownEncKinds(e.cfg)) {
		st.Points += cryptoBonus
		events = append(events, Event{Kind: EventCryptoKing, Points: cryptoBonus})
	}

	e.log.Info("capture %s enc=%s points=%d streak=%d", c.ESSID, enc, points, st.Streak)
	return points, events
}

// CheckTitleTransitions resolves the current age and strength titles and
// emits an event for each one that differs from its last-announced value.
// This is the only path that announces title changes.
func (e *Engine) CheckTitleTransitions() []Event {
	st := e.st
	var events []Event

	if age := ResolveTitle(st.Epochs, e.cfg.AgeTitles, FloorAgeTitle); age != st.PrevAgeTitle {
		st.PrevAgeTitle = age
		e.log.Info("new age title: %s", age)
		events = append(events, Event{Kind: EventAgeTitle, Title: age})
	}
	if str := ResolveTitle(st.TrainEpochs, e.cfg.StrengthTitles, FloorStrengthTitle); str != st.PrevStrengthTitle {
		st.PrevStrengthTitle = str
		e.log.Info("new strength title: %s", str)
		events = append(events, Event{Kind: EventStrengthTitle, Title: str})
	}
	return events
}

func knownEncKinds(cfg *config.Config) types.StringSet {
	kinds := make(types.StringSet, len(cfg.PointsMap))
	for k := range cfg.PointsMap {
		kinds[strings.ToLower(k)] = struct{}{}
	}
	return kinds
}
