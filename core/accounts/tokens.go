// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"os"
	"sort"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/courierhq/courier/core/security"
	"github.com/courierhq/courier/internal/config"
)

// DefaultAccountID names the implicit account every channel has when no
// multi-account overrides are configured.
const DefaultAccountID = "default"

// accountIDs returns the deterministic account id list for a channel: the
// default account first, then the override keys in sorted order.
func accountIDs[T any](overrides map[string]T) []string {
	ids := []string{DefaultAccountID}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		if k != DefaultAccountID {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return append(ids, keys...)
}

// tokenSpec describes where a single credential may be found, in lookup
// order: literal config value, token file, environment variables, OS
// keyring.
type tokenSpec struct {
	value       string
	valueSource string
	filePath    string
	fileSource  string
	envVars     []string
	keyringKey  string
}

// resolveToken locates a credential and tags it with its source. Lookup
// failures (unreadable file, absent keyring backend) are swallowed; the
// next source is tried. A zero Secret with an empty tag means nothing was
// found anywhere.
func resolveToken(cfg *config.Config, spec tokenSpec) (security.Secret, string) {
	if v := strings.TrimSpace(spec.value); v != "" {
		return security.FromString(v), spec.valueSource
	}
	if spec.filePath != "" {
		if data, err := os.ReadFile(spec.filePath); err == nil {
			if tok := strings.TrimSpace(string(data)); tok != "" {
				return security.FromString(tok), spec.fileSource
			}
		}
	}
	for _, name := range spec.envVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return security.FromString(v), "env:" + name
		}
	}
	if cfg.KeyringService != "" && spec.keyringKey != "" {
		if v, err := keyring.Get(cfg.KeyringService, spec.keyringKey); err == nil {
			if tok := strings.TrimSpace(v); tok != "" {
				return security.FromString(tok), "keyring"
			}
		}
	}
	return nil, ""
}

// fieldOrEnv resolves a non-secret credential field from config first, then
// a single environment variable.
func fieldOrEnv(value, envVar string) (string, string) {
	if v := strings.TrimSpace(value); v != "" {
		return v, "config"
	}
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, "env:" + envVar
	}
	return "", ""
}
