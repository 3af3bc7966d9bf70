package host

import (
	"math/rand"
	"strings"
	"time"

	"vitae/internal/config"
	"vitae/internal/display"
	"vitae/internal/geo"
	"vitae/internal/logging"
	"vitae/internal/metrics"
	"vitae/internal/progression"
	"vitae/internal/store"
	"vitae/internal/traveler"
)

// Widget names registered on the host display.
const (
	WidgetAge         = "Age"
	WidgetStrength    = "Strength"
	WidgetPoints      = "Points"
	WidgetProgress    = "Progress"
	WidgetPersonality = "Personality"
	WidgetTravel      = "Travel"
)

// AgePlugin ties the progression engine, traveler tracker, persistence,
// and presentation together behind the host's callback surface. All
// failures are absorbed here: nothing this plugin does may take the host
// down.
type AgePlugin struct {
	cfg     *config.Config
	log     logging.Logger
	engine  *progression.Engine
	store   *store.Store
	audit   *store.AuditLog
	geo     *geo.Source
	collect *metrics.Collector
	rng     *rand.Rand
	now     func() time.Time
}

// Option tweaks plugin construction.
type Option func(*AgePlugin)

// WithMetrics attaches a Prometheus collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(p *AgePlugin) { p.collect = c }
}

// WithGeoSource overrides the GPS candidate paths.
func WithGeoSource(src *geo.Source) Option {
	return func(p *AgePlugin) { p.geo = src }
}

// WithClock injects the time source used for night-owl checks and audit
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *AgePlugin) { p.now = now }
}

// New builds the plugin. It stays inert until OnLoaded delivers options.
func New(log logging.Logger, opts ...Option) *AgePlugin {
	p := &AgePlugin{
		log: logging.OrNop(log),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the active configuration; nil before OnLoaded.
func (p *AgePlugin) Config() *config.Config {
	return p.cfg
}

// State returns the live aggregate; nil before OnLoaded.
func (p *AgePlugin) State() *progression.State {
	if p.engine == nil {
		return nil
	}
	return p.engine.State()
}

// OnLoaded resolves configuration, loads persisted state, and seeds the
// handshake counter from existing captures.
func (p *AgePlugin) OnLoaded(options map[string]any) {
	p.cfg = config.FromMap(options, p.log)

	st := progression.NewState()
	p.store = store.New(p.cfg.DataPath, p.log)

	// Blank the pre-seeded floors so a state file written before the
	// prev_age/prev_strength keys existed is detectable: absent keys
	// leave them empty after decoding, and the titles are resolved from
	// the loaded counters instead of re-announcing on the next tick.
	st.PrevAgeTitle, st.PrevStrengthTitle = "", ""
	_ = p.store.Load(st)
	if st.PrevAgeTitle == "" {
		st.PrevAgeTitle = progression.ResolveTitle(st.Epochs, p.cfg.AgeTitles, progression.FloorAgeTitle)
	}
	if st.PrevStrengthTitle == "" {
		st.PrevStrengthTitle = progression.ResolveTitle(st.TrainEpochs, p.cfg.StrengthTitles, progression.FloorStrengthTitle)
	}

	if store.SeedHandshakes(st, p.cfg.HandshakeDir) {
		p.log.Info("seeded handshake count to %d from %s", st.Handshakes, p.cfg.HandshakeDir)
		p.save(st)
	}

	p.engine = progression.NewEngine(p.cfg, st, p.log)
	p.engine.Now = p.now
	p.audit = store.NewAuditLog(p.cfg.AuditLogPath)
	if p.geo == nil {
		p.geo = geo.NewSource(p.log)
	}
	p.log.Info("loaded: %d epochs, %d points, %d handshakes", st.Epochs, st.Points, st.Handshakes)
}

// OnEpoch advances the clock: counters, decay, title transitions, bonus
// event rolls, and an unconditional save.
func (p *AgePlugin) OnEpoch(view View) {
	if p.engine == nil {
		return
	}
	st := p.engine.State()
	events := p.engine.Tick()
	p.announce(view, events)

	if p.collect != nil {
		p.collect.Epochs.Inc()
		p.collect.Points.Set(float64(st.Points))
		p.collect.Streak.Set(float64(st.Streak))
		for _, ev := range events {
			if ev.Kind == progression.EventDecay {
				p.collect.DecayEvents.Inc()
			}
		}
	}
	p.save(st)
}

// OnHandshake scores one captured handshake. Malformed payloads are logged
// and ignored without touching state.
func (p *AgePlugin) OnHandshake(view View, payload any) {
	if p.engine == nil {
		return
	}
	meta, err := ParseAPMetadata(payload)
	if err != nil {
		p.log.Warn("ignoring capture: %v", err)
		return
	}

	st := p.engine.State()
	points, events := p.engine.Capture(progression.Capture{
		Encryption: meta.Encryption,
		ESSID:      meta.ESSID,
		BSSID:      meta.BSSID,
	})

	if p.cfg.EnableTravel {
		events = append(events, p.recordTravel(st, meta)...)
	}

	p.announce(view, events)

	if err := p.audit.Append(p.now(), meta.ESSID, strings.ToLower(meta.Encryption), points); err != nil {
		p.log.Warn("audit log: %v", err)
	}
	if p.collect != nil {
		p.collect.Captures.Inc()
		p.collect.Points.Set(float64(st.Points))
		p.collect.Streak.Set(float64(st.Streak))
	}
	p.save(st)
}

func (p *AgePlugin) recordTravel(st *progression.State, meta APMetadata) []progression.Event {
	travel := st.EnsureTravel()
	res := travel.Record(traveler.Observation{
		ESSID:   meta.ESSID,
		BSSID:   meta.BSSID,
		Channel: meta.ChannelNumber(),
	}, p.geo.Read(), p.cfg.TravelGrid, traveler.Thresholds(p.cfg.TravelTitles))

	if res.XP > 0 {
		p.log.Info("travel: +%d XP (place %s), level %d", res.XP, res.Place, res.Level)
	}
	if p.collect != nil {
		p.collect.TravelXP.Set(float64(travel.XP))
	}
	if res.LeveledUp {
		return []progression.Event{{Kind: progression.EventTravelLevel, Points: res.Level}}
	}
	return nil
}

// OnDisplaySetup registers the plugin's widgets at their configured
// positions.
func (p *AgePlugin) OnDisplaySetup(view View) {
	if p.cfg == nil {
		return
	}
	pos := p.cfg.Positions
	view.AddWidget(WidgetAge, "Age", "Newborn", pos["age"])
	view.AddWidget(WidgetStrength, "Str", "Rookie", pos["strength"])
	view.AddWidget(WidgetPoints, "Pts", "0", pos["points"])
	view.AddWidget(WidgetProgress, "Age", display.ProgressBar(0, p.cfg.ProgressBarCells), pos["progress"])
	if p.cfg.ShowPersonality {
		view.AddWidget(WidgetPersonality, "Trait", "Neutral", pos["personality"])
	}
	if p.cfg.EnableTravel {
		view.AddWidget(WidgetTravel, "Trip", progression.FloorTravelTitle, pos["travel"])
	}
}

// OnDisplayRefresh pushes current widget values to the host surface.
func (p *AgePlugin) OnDisplayRefresh(view View) {
	if p.engine == nil {
		return
	}
	w := display.Snapshot(p.engine.State(), p.cfg)
	view.SetWidget(WidgetAge, w.Age)
	view.SetWidget(WidgetStrength, w.Strength)
	view.SetWidget(WidgetPoints, w.Points)
	view.SetWidget(WidgetProgress, w.Progress)
	if p.cfg.ShowPersonality {
		view.SetWidget(WidgetPersonality, w.Personality)
	}
	if p.cfg.EnableTravel && w.Travel != "" {
		view.SetWidget(WidgetTravel, w.Travel)
	}
}

func (p *AgePlugin) announce(view View, events []progression.Event) {
	if view == nil {
		return
	}
	st := p.engine.State()
	for _, ev := range events {
		mood, status := display.Render(ev, st, p.cfg.Quotes, p.rng)
		if status == "" {
			continue
		}
		view.SetMood(mood)
		view.SetStatus(status)
	}
}

func (p *AgePlugin) save(st *progression.State) {
	if err := p.store.Save(st); err != nil {
		p.log.Error("save state: %v", err)
	}
}
