package config

// DefaultAgeTitles maps lifetime epoch counts to age labels.
func DefaultAgeTitles() map[int]string {
	return map[int]string{
		100:    "Hatchling",
		200:    "Pingling",
		275:    "Bootsprout",
		350:    "Fledgling",
		450:    "Bitling",
		600:    "Orbitling",
		750:    "Qubitling",
		900:    "Pingpunk",
		1050:   "Telemetry Tween",
		1200:   "Cipher Teen",
		1350:   "Beacon Teen",
		1500:   "Protocol Teen",
		2000:   "Emergent Adult",
		3000:   "Young Adult",
		4000:   "Mature",
		5000:   "Seasoned",
		7000:   "Elder",
		10000:  "Encrypted Sage",
		15000:  "Ancient",
		20000:  "Celestial Ancestor",
		30000:  "Eon Ancestor",
		40000:  "Binary Venerable",
		55000:  "Quantum Elder",
		80000:  "Primordial",
		100000: "Galactic Root",
		111111: "Singularity",
	}
}

// DefaultStrengthTitles maps train-epoch counts to strength labels.
func DefaultStrengthTitles() map[int]string {
	return map[int]string{
		100:    "Neophyte",
		250:    "Cyber Trainee",
		400:    "Bitbreaker",
		600:    "Packet Slinger",
		900:    "Kernel Keeper",
		1200:   "Deauth Cadet",
		1600:   "Packeteer",
		2000:   "Hash Hunter",
		2500:   "Signalist",
		3200:   "Ethernaut",
		4500:   "WiFi Marauder",
		6000:   "Neural Saboteur",
		8000:   "Astral Admiral",
		12000:  "Signal Master",
		18000:  "Quantum Brawler",
		30000:  "Rootwave Titan",
		55555:  "Void Breaker",
		111111: "Omega Cipherlord",
	}
}

// DefaultTravelTitles maps cumulative travel XP to traveler labels.
func DefaultTravelTitles() map[int]string {
	return map[int]string{
		50:    "Stroller",
		150:   "Wanderer",
		350:   "Roamer",
		700:   "Pathfinder",
		1200:  "Voyager",
		2000:  "Globetrotter",
		3500:  "Nomad",
		6000:  "Worldwalker",
		10000: "Starfarer",
	}
}

// DefaultPointsMap maps encryption labels to base capture rewards.
func DefaultPointsMap() map[string]int {
	return map[string]int{
		"wpa3": 10,
		"wpa2": 5,
		"wep":  2,
		"wpa":  2,
	}
}

// DefaultQuotes are shown when no context-specific message applies.
func DefaultQuotes() []string {
	return []string{
		"Keep going, you're crushing it!",
		"You're a WiFi wizard in the making!",
		"More handshakes, more power!",
		"Don't stop now, you're almost there!",
		"Keep evolving, don't let decay catch you!",
	}
}

// DefaultPositions holds per-widget screen coordinates.
func DefaultPositions() map[string]Position {
	return map[string]Position{
		"age":         {X: 10, Y: 40},
		"strength":    {X: 80, Y: 40},
		"points":      {X: 10, Y: 60},
		"progress":    {X: 10, Y: 80},
		"personality": {X: 10, Y: 100},
		"travel":      {X: 10, Y: 120},
	}
}
