package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
	"github.com/burntnail/pulse/internal/probe"
	"github.com/burntnail/pulse/internal/timing"
)

// checkCmd probes a single target once and prints the measured round trip.
// Usage: pulse check [--identity NAME] KIND ADDRESS
func checkCmd(args []string) {
	var identityName string
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--identity" {
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --identity requires a name")
				os.Exit(1)
			}
			identityName = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}

	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: pulse check [--identity NAME] KIND ADDRESS")
		os.Exit(1)
	}
	kind, address := rest[0], rest[1]

	var id *identity.Identity
	if identityName != "" {
		store := openStore()
		var err error
		id, err = store.Get(identityName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	target := board.Target{
		Kind:    kind,
		Address: address,
		Timeout: 5 * time.Second,
	}
	p, err := probe.New(target, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), target.Timeout)
	defer cancel()

	sw := timing.NewStopwatch(fmt.Sprintf("%s probe of %s", kind, address))
	probeErr := p.Probe(ctx)
	rtt := sw.Elapsed()

	if probeErr != nil {
		fmt.Fprintf(os.Stderr, "%s %s: DOWN after %s (%v)\n", kind, address, rtt.Round(time.Microsecond), probeErr)
		os.Exit(1)
	}
	fmt.Printf("%s %s: UP in %s\n", kind, address, rtt.Round(time.Microsecond))
}
