package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCredentialsMissing is returned when one or more of the required
// credential values is absent.
var ErrCredentialsMissing = errors.New("missing Zoom API credentials")

// Credentials identify a Zoom Server-to-Server OAuth app.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	AccountID    string `json:"account_id"`
}

// Validate reports ErrCredentialsMissing naming every absent field.
func (c Credentials) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.AccountID == "" {
		missing = append(missing, "account_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", ErrCredentialsMissing, strings.Join(missing, ", "))
	}
	return nil
}

// Store reads and writes credentials to persistent storage.
type Store interface {
	// Read returns the stored credentials. Returns an error wrapping
	// ErrCredentialsMissing if any value is absent.
	Read(ctx context.Context) (Credentials, error)

	// Write persists the credentials. Returns error if storage backend
	// is read-only (e.g., environment variables) or if write operation fails.
	Write(ctx context.Context, creds Credentials) error
}
