package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// VaultPrefix marks a value that must be fetched from Vault, written as
// "vault:<mount>/<path>#<key>".
const VaultPrefix = "vault:"

// SecretGetter is the slice of the Vault client that config needs.
type SecretGetter interface {
	GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error)
}

// NeedsSecrets reports whether any field still holds a vault reference.
func (c *Config) NeedsSecrets() bool {
	for _, p := range c.secretFields() {
		if strings.HasPrefix(*p, VaultPrefix) {
			return true
		}
	}
	return false
}

// ResolveSecrets replaces every vault reference in c with the secret value.
func ResolveSecrets(ctx context.Context, c *Config, sg SecretGetter) error {
	for _, p := range c.secretFields() {
		ref := *p
		if !strings.HasPrefix(ref, VaultPrefix) {
			continue
		}
		path, key, ok := strings.Cut(strings.TrimPrefix(ref, VaultPrefix), "#")
		if !ok || path == "" || key == "" {
			return fmt.Errorf("config: malformed vault reference %q", ref)
		}
		val, err := sg.GetKV(ctx, path, key, 0)
		if err != nil {
			return fmt.Errorf("config: resolve %s: %w", ref, err)
		}
		*p = val
		zap.S().Debugw("config secret resolved", "path", path, "key", key)
	}
	return nil
}

// DatabaseDSN returns the DSN with the password substituted for its %s
// verb, or the DSN unchanged when it has none.
func (c *Config) DatabaseDSN() string {
	if strings.Contains(c.Database.DSN, "%s") {
		return fmt.Sprintf(c.Database.DSN, c.Database.Password)
	}
	return c.Database.DSN
}

func (c *Config) secretFields() []*string {
	return []*string{&c.Database.DSN, &c.Database.Password}
}
