package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
)

// oidSysUpTime is the cheapest universally supported scalar; a successful
// GET on it proves the agent is answering.
const oidSysUpTime = "1.3.6.1.2.1.1.3.0"

const defaultSNMPPort = 161

// SNMPProber measures the round trip of an SNMP GET against the target
// agent. Each probe opens a fresh session so the measurement includes the
// transport setup a cold poll would pay.
type SNMPProber struct {
	host    string
	port    uint16
	id      *identity.Identity
	timeout time.Duration
}

func newSNMPProber(t board.Target, id *identity.Identity) (*SNMPProber, error) {
	host, port, err := splitHostPort(t.Address)
	if err != nil {
		return nil, fmt.Errorf("snmp target %q: %w", t.Address, err)
	}
	p := &SNMPProber{host: host, port: port, id: id, timeout: t.Timeout}
	// Validate the identity eagerly so a bad version surfaces at board
	// load instead of on the first poll tick.
	if _, err := p.newClient(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SNMPProber) Probe(ctx context.Context) error {
	client, err := p.newClient()
	if err != nil {
		return err
	}
	client.Context = ctx
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Conn.Close()

	result, err := client.Get([]string{oidSysUpTime})
	if err != nil {
		return err
	}
	if len(result.Variables) == 0 || result.Variables[0].Type == gosnmp.NoSuchObject {
		return fmt.Errorf("agent returned no sysUpTime")
	}
	return nil
}

// newClient builds a gosnmp client configured from the prober's identity.
func (p *SNMPProber) newClient() (*gosnmp.GoSNMP, error) {
	client := &gosnmp.GoSNMP{
		Target:  p.host,
		Port:    p.port,
		Timeout: p.timeout,
		Retries: 1,
	}

	switch p.id.SNMPVersion {
	case "1":
		client.Version = gosnmp.Version1
		client.Community = p.id.Community
	case "2c", "":
		client.Version = gosnmp.Version2c
		client.Community = p.id.Community
	case "3":
		client.Version = gosnmp.Version3
		client.SecurityModel = gosnmp.UserSecurityModel
		client.MsgFlags = v3MsgFlags(p.id)
		client.SecurityParameters = &gosnmp.UsmSecurityParameters{
			UserName:                 p.id.Username,
			AuthenticationProtocol:   v3AuthProto(p.id.AuthProto),
			AuthenticationPassphrase: p.id.AuthPass,
			PrivacyProtocol:          v3PrivProto(p.id.PrivProto),
			PrivacyPassphrase:        p.id.PrivPass,
		}
	default:
		return nil, fmt.Errorf("unsupported SNMP version: %s", p.id.SNMPVersion)
	}
	return client, nil
}

// splitHostPort splits an address into host and SNMP port, defaulting the
// port to 161 when absent.
func splitHostPort(address string) (string, uint16, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		// No port in the address.
		return address, defaultSNMPPort, nil
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("bad port %q", portStr)
	}
	return host, uint16(port), nil
}

func v3MsgFlags(id *identity.Identity) gosnmp.SnmpV3MsgFlags {
	if id.PrivProto != "" && id.PrivPass != "" {
		return gosnmp.AuthPriv
	}
	if id.AuthProto != "" && id.AuthPass != "" {
		return gosnmp.AuthNoPriv
	}
	return gosnmp.NoAuthNoPriv
}

func v3AuthProto(proto string) gosnmp.SnmpV3AuthProtocol {
	switch proto {
	case "MD5":
		return gosnmp.MD5
	case "SHA":
		return gosnmp.SHA
	case "SHA256":
		return gosnmp.SHA256
	case "SHA512":
		return gosnmp.SHA512
	default:
		return gosnmp.NoAuth
	}
}

func v3PrivProto(proto string) gosnmp.SnmpV3PrivProtocol {
	switch proto {
	case "DES":
		return gosnmp.DES
	case "AES", "AES128":
		return gosnmp.AES
	case "AES192":
		return gosnmp.AES192
	case "AES256":
		return gosnmp.AES256
	default:
		return gosnmp.NoPriv
	}
}
