package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
)

// HTTPProber measures an HTTP GET round trip. Responses with status
// codes below 400 count as reachable.
type HTTPProber struct {
	url    string
	id     *identity.Identity
	client *http.Client
}

func newHTTPProber(t board.Target, id *identity.Identity) *HTTPProber {
	return &HTTPProber{
		url: t.Address,
		id:  id,
		client: &http.Client{
			Timeout: t.Timeout,
			// Redirects would add their own round trips to the measurement.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *HTTPProber) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return err
	}
	if p.id != nil {
		switch p.id.Kind {
		case identity.KindBasic:
			req.SetBasicAuth(p.id.Username, p.id.Password)
		case identity.KindBearer:
			req.Header.Set("Authorization", "Bearer "+p.id.Token)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, readErr := io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("http status %d", resp.StatusCode)
	}
	if readErr != nil {
		return fmt.Errorf("read body: %w", readErr)
	}
	return nil
}
