package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/burntnail/pulse/internal/config"
	"github.com/burntnail/pulse/internal/identity"
)

func identityCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: pulse identity <list|add|remove|test>")
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		identityList()
	case "add":
		identityAdd()
	case "remove":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: pulse identity remove NAME")
			os.Exit(1)
		}
		identityRemove(args[1])
	case "test":
		if len(args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: pulse identity test NAME KIND ADDRESS")
			os.Exit(1)
		}
		identityTest(args[1], args[2], args[3])
	default:
		fmt.Fprintf(os.Stderr, "Unknown identity command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: pulse identity <list|add|remove|test>")
		os.Exit(1)
	}
}

// openStore opens the identity vault, prompting for the master password if
// needed. Tries an empty password first to support no-password vaults.
func openStore() *identity.FileStore {
	storePath, err := config.GetIdentityStorePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	store, storeErr := identity.NewFileStore(storePath, []byte(""))
	if storeErr == nil {
		return store
	}

	password := getMasterPassword()
	store, storeErr = identity.NewFileStore(storePath, password)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Error opening identity vault: %v\n", storeErr)
		os.Exit(1)
	}
	return store
}

// getMasterPassword reads the master password from PULSE_MASTER_KEY or
// prompts.
func getMasterPassword() []byte {
	if key := os.Getenv("PULSE_MASTER_KEY"); key != "" {
		return []byte(key)
	}

	fmt.Fprint(os.Stderr, "Master password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return password
}

func identityList() {
	store := openStore()
	summaries, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing identities: %v\n", err)
		os.Exit(1)
	}

	if len(summaries) == 0 {
		fmt.Println("No identities configured.")
		return
	}

	for _, s := range summaries {
		line := fmt.Sprintf("%-20s  kind=%s", s.Name, s.Kind)
		if s.Username != "" {
			line += fmt.Sprintf("  user=%s", s.Username)
		}
		if s.SNMPVersion != "" {
			line += fmt.Sprintf("  snmp=%s", s.SNMPVersion)
		}
		if s.AuthProto != "" {
			line += fmt.Sprintf("  auth=%s", s.AuthProto)
		}
		if s.PrivProto != "" {
			line += fmt.Sprintf("  priv=%s", s.PrivProto)
		}
		fmt.Println(line)
	}
}

func identityAdd() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Identity name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: name is required")
		os.Exit(1)
	}

	fmt.Print("Kind (basic, bearer, snmp): ")
	kind, _ := reader.ReadString('\n')
	kind = strings.TrimSpace(kind)

	id := identity.Identity{
		Name: name,
		Kind: kind,
	}

	switch kind {
	case identity.KindBasic:
		fmt.Print("Username: ")
		username, _ := reader.ReadString('\n')
		id.Username = strings.TrimSpace(username)

		fmt.Fprint(os.Stderr, "Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
		id.Password = string(password)

	case identity.KindBearer:
		fmt.Fprint(os.Stderr, "Token: ")
		token, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading token: %v\n", err)
			os.Exit(1)
		}
		id.Token = string(token)

	case identity.KindSNMP:
		fmt.Print("SNMP version (1, 2c, 3): ")
		version, _ := reader.ReadString('\n')
		id.SNMPVersion = strings.TrimSpace(version)

		switch id.SNMPVersion {
		case "1", "2c":
			fmt.Print("Community string: ")
			community, _ := reader.ReadString('\n')
			id.Community = strings.TrimSpace(community)
			if id.Community == "" {
				fmt.Fprintln(os.Stderr, "Error: community string is required for v1/v2c")
				os.Exit(1)
			}

		case "3":
			fmt.Print("Username: ")
			username, _ := reader.ReadString('\n')
			id.Username = strings.TrimSpace(username)
			if id.Username == "" {
				fmt.Fprintln(os.Stderr, "Error: username is required for v3")
				os.Exit(1)
			}

			fmt.Print("Auth protocol (none, MD5, SHA, SHA256, SHA512): ")
			authProto, _ := reader.ReadString('\n')
			authProto = strings.TrimSpace(authProto)
			if authProto != "" && authProto != "none" {
				id.AuthProto = strings.ToUpper(authProto)

				fmt.Fprint(os.Stderr, "Auth password: ")
				authPass, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
					os.Exit(1)
				}
				id.AuthPass = string(authPass)

				fmt.Print("Privacy protocol (none, DES, AES128, AES192, AES256): ")
				privProto, _ := reader.ReadString('\n')
				privProto = strings.TrimSpace(privProto)
				if privProto != "" && privProto != "none" {
					id.PrivProto = strings.ToUpper(privProto)

					fmt.Fprint(os.Stderr, "Privacy password: ")
					privPass, err := term.ReadPassword(int(os.Stdin.Fd()))
					fmt.Fprintln(os.Stderr)
					if err != nil {
						fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
						os.Exit(1)
					}
					id.PrivPass = string(privPass)
				}
			}

		default:
			fmt.Fprintln(os.Stderr, "Error: version must be 1, 2c, or 3")
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Error: kind must be basic, bearer, or snmp")
		os.Exit(1)
	}

	store := openStore()
	if err := store.Add(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding identity: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Identity %q added.\n", name)
}

// identityTest probes a target once using the named identity, verifying
// the stored credentials actually work.
func identityTest(name, kind, address string) {
	checkCmd([]string{"--identity", name, kind, address})
}

func identityRemove(name string) {
	store := openStore()
	if err := store.Remove(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing identity: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Identity %q removed.\n", name)
}
