package board

import "time"

// Target kinds understood by the probe layer.
const (
	KindHTTP = "http"
	KindTCP  = "tcp"
	KindSNMP = "snmp"
)

// Board represents a complete monitoring board loaded from TOML.
type Board struct {
	Name            string        `toml:"name"`
	DefaultIdentity string        `toml:"default_identity"`
	IntervalStr     string        `toml:"interval"`
	Interval        time.Duration `toml:"-"`
	MaxHistory      int           `toml:"max_history"`
	Groups          []Group       `toml:"groups"`
}

// Group represents a named collection of probe targets.
type Group struct {
	Name    string   `toml:"name"`
	Targets []Target `toml:"targets"`
}

// Target represents a single endpoint to probe.
type Target struct {
	Kind       string        `toml:"kind"` // http, tcp, snmp
	Address    string        `toml:"address"`
	Label      string        `toml:"label"`
	Identity   string        `toml:"identity"`
	TimeoutStr string        `toml:"timeout"`
	Timeout    time.Duration `toml:"-"`
}

// DisplayLabel returns the label, falling back to the address.
func (t Target) DisplayLabel() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Address
}
