package probe

import (
	"context"
	"net"
	"time"

	"github.com/burntnail/pulse/internal/board"
)

// TCPProber measures the time to complete a TCP handshake with the target.
type TCPProber struct {
	address string
	timeout time.Duration
}

func newTCPProber(t board.Target) *TCPProber {
	return &TCPProber{address: t.Address, timeout: t.Timeout}
}

func (p *TCPProber) Probe(ctx context.Context) error {
	d := net.Dialer{Timeout: p.timeout}
	conn, err := d.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return err
	}
	return conn.Close()
}
