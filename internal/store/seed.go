package store

import (
	"os"
	"strings"

	"vitae/internal/progression"
)

// SeedHandshakes initializes the handshake counter from the number of
// .pcap files already on disk, once, only when the counter is still zero.
// Returns true when the counter was seeded.
func SeedHandshakes(st *progression.State, dir string) bool {
	if st.Handshakes != 0 {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".pcap") {
			count++
		}
	}
	if count == 0 {
		return false
	}
	st.Handshakes = count
	return true
}
