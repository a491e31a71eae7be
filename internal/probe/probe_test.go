package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
)

func httpTarget(url string) board.Target {
	return board.Target{Kind: board.KindHTTP, Address: url, Timeout: 2 * time.Second}
}

func TestHTTPProbeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := New(httpTarget(srv.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("Probe: %v", err)
	}
}

func TestHTTPProbeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, _ := New(httpTarget(srv.URL), nil)
	if err := p.Probe(context.Background()); err == nil {
		t.Error("Probe should fail on 500")
	}
}

func TestHTTPProbeBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "probe" || pass != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	id := &identity.Identity{Name: "api", Kind: identity.KindBasic, Username: "probe", Password: "pw"}
	p, _ := New(httpTarget(srv.URL), id)
	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("authenticated Probe: %v", err)
	}

	anon, _ := New(httpTarget(srv.URL), nil)
	if err := anon.Probe(context.Background()); err == nil {
		t.Error("unauthenticated Probe should fail with 401")
	}
}

func TestHTTPProbeBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	id := &identity.Identity{Name: "api", Kind: identity.KindBearer, Token: "tok123"}
	p, _ := New(httpTarget(srv.URL), id)
	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("bearer Probe: %v", err)
	}
}

func TestHTTPProbeTruncatedBody(t *testing.T) {
	// Respond 200 but close the connection before delivering the
	// declared body, so the drain hits an unexpected EOF.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Read(make([]byte, 1024))
		conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\npartial"))
		conn.Close()
	}()

	p, _ := New(httpTarget("http://"+ln.Addr().String()), nil)
	if err := p.Probe(context.Background()); err == nil {
		t.Error("Probe should report a truncated response body")
	}
}

func TestHTTPProbeDoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer srv.Close()

	p, _ := New(httpTarget(srv.URL), nil)
	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("redirect response should count as reachable: %v", err)
	}
}

func TestTCPProbe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	p, err := New(board.Target{Kind: board.KindTCP, Address: ln.Addr().String(), Timeout: time.Second}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("Probe: %v", err)
	}
}

func TestTCPProbeRefused(t *testing.T) {
	// Grab a port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	p, _ := New(board.Target{Kind: board.KindTCP, Address: addr, Timeout: 500 * time.Millisecond}, nil)
	if err := p.Probe(context.Background()); err == nil {
		t.Error("Probe against closed port should fail")
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(board.Target{Kind: "icmp", Address: "host"}, nil); err == nil {
		t.Error("New should reject unknown kinds")
	}
}

func TestNewSNMPRequiresIdentity(t *testing.T) {
	if _, err := New(board.Target{Kind: board.KindSNMP, Address: "router"}, nil); err == nil {
		t.Error("New should require an identity for snmp targets")
	}
}

func TestNewSNMPRejectsBadVersion(t *testing.T) {
	id := &identity.Identity{Name: "x", Kind: identity.KindSNMP, SNMPVersion: "4"}
	if _, err := New(board.Target{Kind: board.KindSNMP, Address: "router", Timeout: time.Second}, id); err == nil {
		t.Error("New should reject unsupported SNMP versions")
	}
}

func TestSplitHostPort(t *testing.T) {
	host, port, err := splitHostPort("router.local")
	if err != nil || host != "router.local" || port != 161 {
		t.Errorf("splitHostPort bare host = %q,%d,%v", host, port, err)
	}
	host, port, err = splitHostPort("router.local:1161")
	if err != nil || host != "router.local" || port != 1161 {
		t.Errorf("splitHostPort with port = %q,%d,%v", host, port, err)
	}
}
