package credentials

import (
	"context"
	"fmt"
	"os"
)

// Environment variables read by EnvStore.
const (
	EnvClientID     = "ZOOM_CLIENT_ID"
	EnvClientSecret = "ZOOM_CLIENT_SECRET"
	EnvAccountID    = "ZOOM_ACCOUNT_ID"
)

// EnvStore provides read-only access to credentials stored in environment variables.
// Values are looked up on every Read, so rotated variables take effect on the next token fetch.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// Compile-time check to ensure EnvStore implements Store
var _ Store = (*EnvStore)(nil)

// NewEnvStore creates an EnvStore backed by the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{lookup: os.LookupEnv}
}

// NewEnvStoreWithLookup creates an EnvStore using a custom lookup function.
func NewEnvStoreWithLookup(lookup func(string) (string, bool)) *EnvStore {
	return &EnvStore{lookup: lookup}
}

// Read returns the credentials from the environment. Returns error if any value is empty.
func (e *EnvStore) Read(ctx context.Context) (Credentials, error) {
	if err := ctx.Err(); err != nil {
		return Credentials{}, err
	}

	creds := Credentials{
		ClientID:     e.get(EnvClientID),
		ClientSecret: e.get(EnvClientSecret),
		AccountID:    e.get(EnvAccountID),
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, fmt.Errorf("%w (set %s, %s and %s)", err, EnvClientID, EnvClientSecret, EnvAccountID)
	}
	return creds, nil
}

func (e *EnvStore) get(key string) string {
	v, _ := e.lookup(key)
	return v
}

// Write is not supported for environment variables (they are read-only).
func (e *EnvStore) Write(ctx context.Context, _ Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("environment variable storage is read-only")
}
