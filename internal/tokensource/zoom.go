package tokensource

import "time"

const (
	// TokenURL is Zoom's OAuth2 token endpoint.
	TokenURL = "https://zoom.us/oauth/token"

	// GrantType is Zoom's Server-to-Server grant. It is the client-credentials
	// flow under a non-standard name, scoped to one account.
	GrantType = "account_credentials"

	// ExpiryBuffer shortens every token's usable lifetime so a token is never
	// handed out within one minute of its real expiry.
	ExpiryBuffer = 60 * time.Second
)
