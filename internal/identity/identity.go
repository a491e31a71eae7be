package identity

// Kind selects which credential fields of an Identity are meaningful.
const (
	KindBasic  = "basic"  // HTTP basic auth
	KindBearer = "bearer" // HTTP bearer token
	KindSNMP   = "snmp"   // SNMP community or v3 USM
)

// Identity is a named credential profile used by authenticated probes.
type Identity struct {
	Name string `json:"name"`
	Kind string `json:"kind"`

	// basic / bearer
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`

	// snmp
	SNMPVersion string `json:"snmp_version,omitempty"` // "1", "2c", "3"
	Community   string `json:"community,omitempty"`
	AuthProto   string `json:"auth_proto,omitempty"` // "MD5", "SHA", "SHA256", "SHA512"
	AuthPass    string `json:"auth_pass,omitempty"`
	PrivProto   string `json:"priv_proto,omitempty"` // "DES", "AES128", "AES192", "AES256"
	PrivPass    string `json:"priv_pass,omitempty"`
}

// Summary is a representation of an Identity without any secrets.
type Summary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Username    string `json:"username,omitempty"`
	SNMPVersion string `json:"snmp_version,omitempty"`
	AuthProto   string `json:"auth_proto,omitempty"`
	PrivProto   string `json:"priv_proto,omitempty"`
}

// Summarize strips the secret fields from an Identity.
func (id *Identity) Summarize() Summary {
	return Summary{
		Name:        id.Name,
		Kind:        id.Kind,
		Username:    id.Username,
		SNMPVersion: id.SNMPVersion,
		AuthProto:   id.AuthProto,
		PrivProto:   id.PrivProto,
	}
}

// Provider is the interface for identity storage backends.
type Provider interface {
	List() ([]Summary, error)
	Get(name string) (*Identity, error)
	Add(id Identity) error
	Update(name string, id Identity) error
	Remove(name string) error
}
