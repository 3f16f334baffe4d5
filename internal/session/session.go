// Package session resolves the puzzle-site session token.
package session

import (
	"fmt"
	"strings"

	"aochelper/internal/aocerr"
	"aochelper/internal/config"
)

// DefaultEnvVar is the environment variable consulted for the token.
const DefaultEnvVar = "AOC_SESSION_ID"

// Credential is an opaque session token. Its String form is redacted.
type Credential struct {
	value string
}

// NewCredential wraps a raw token.
func NewCredential(token string) Credential {
	return Credential{value: strings.TrimSpace(token)}
}

// Value returns the raw token for use in the session cookie.
func (c Credential) Value() string { return c.value }

// IsZero reports whether the credential is empty.
func (c Credential) IsZero() bool { return c.value == "" }

func (c Credential) String() string {
	if c.value == "" {
		return "session(none)"
	}
	return "session(redacted)"
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolver picks the first non-empty token from Override, the environment
// and the config file, in that order. A nil LookupEnv skips the environment.
// Config, when set, is an already loaded file and replaces ConfigPath; with
// both empty the file is skipped.
type Resolver struct {
	Override   string
	EnvVar     string
	LookupEnv  LookupFunc
	ConfigPath string
	Config     *config.Config
}

// Resolve returns the credential or aocerr.ErrMissingCredential.
func (r Resolver) Resolve() (Credential, error) {
	if c := NewCredential(r.Override); !c.IsZero() {
		return c, nil
	}

	if r.LookupEnv != nil {
		name := r.EnvVar
		if name == "" {
			name = DefaultEnvVar
		}
		if v, ok := r.LookupEnv(name); ok {
			if c := NewCredential(v); !c.IsZero() {
				return c, nil
			}
		}
	}

	if r.Config != nil {
		if c := NewCredential(r.Config.SessionID); !c.IsZero() {
			return c, nil
		}
	} else if r.ConfigPath != "" {
		cfg, err := config.Load(r.ConfigPath)
		if err != nil {
			return Credential{}, fmt.Errorf("session config: %w", err)
		}
		if c := NewCredential(cfg.SessionID); !c.IsZero() {
			return c, nil
		}
	}

	return Credential{}, aocerr.ErrMissingCredential
}
