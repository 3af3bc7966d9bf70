// Package host is the boundary between the core and the hosting agent
// process: the plugin callback surface, the display abstraction, and
// validation of inbound capture payloads.
package host

import (
	"fmt"
	"strconv"
	"strings"

	"vitae/internal/config"
	"vitae/internal/display"
)

// View is the slice of the host display surface the plugin drives.
type View interface {
	AddWidget(name, label, value string, pos config.Position)
	SetWidget(name, value string)
	SetMood(mood display.Mood)
	SetStatus(status string)
}

// Plugin is the callback surface the host invokes.
type Plugin interface {
	OnLoaded(options map[string]any)
	OnEpoch(view View)
	OnHandshake(view View, payload any)
	OnDisplaySetup(view View)
	OnDisplayRefresh(view View)
}

// APMetadata is the validated capture payload. Hosts deliver loosely-typed
// maps; ParseAPMetadata rejects anything that is not shaped like an access
// point record so the core never probes payload shape itself.
type APMetadata struct {
	Encryption string
	ESSID      string
	BSSID      string
	Channel    string
}

// ChannelNumber parses the channel field, or 0 when it is absent or not
// numeric.
func (m APMetadata) ChannelNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(m.Channel))
	if err != nil {
		return 0
	}
	return n
}

// ParseAPMetadata validates an inbound capture payload. Accepted shapes are
// an APMetadata value or a string-keyed map; anything else is malformed.
func ParseAPMetadata(payload any) (APMetadata, error) {
	switch p := payload.(type) {
	case APMetadata:
		return p, nil
	case *APMetadata:
		if p == nil {
			return APMetadata{}, fmt.Errorf("nil capture payload")
		}
		return *p, nil
	case map[string]any:
		meta := APMetadata{
			Encryption: stringField(p, "encryption"),
			ESSID:      stringField(p, "essid"),
			BSSID:      strings.ToLower(stringField(p, "bssid")),
			Channel:    channelField(p),
		}
		if meta.ESSID == "" {
			meta.ESSID = "unknown"
		}
		return meta, nil
	default:
		return APMetadata{}, fmt.Errorf("capture payload is %T, want map or APMetadata", payload)
	}
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, isString := v.(string); isString {
			return s
		}
	}
	return ""
}

func channelField(m map[string]any) string {
	switch v := m["channel"].(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.Itoa(int(v))
	default:
		return ""
	}
}
