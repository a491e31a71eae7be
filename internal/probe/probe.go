// Package probe implements the reachability checks whose latencies the
// engine records. A Prober does one synchronous check; timing it is the
// caller's job.
package probe

import (
	"context"
	"fmt"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
)

// Prober performs a single reachability check against its target.
type Prober interface {
	// Probe returns nil if the target responded, an error otherwise.
	Probe(ctx context.Context) error
}

// New builds a Prober for the target. id supplies credentials and may be
// nil for unauthenticated probes; SNMP targets require one.
func New(t board.Target, id *identity.Identity) (Prober, error) {
	switch t.Kind {
	case board.KindHTTP:
		return newHTTPProber(t, id), nil
	case board.KindTCP:
		return newTCPProber(t), nil
	case board.KindSNMP:
		if id == nil {
			return nil, fmt.Errorf("snmp target %q requires an identity", t.Address)
		}
		return newSNMPProber(t, id)
	default:
		return nil, fmt.Errorf("unknown target kind %q", t.Kind)
	}
}
