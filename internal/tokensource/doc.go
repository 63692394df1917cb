// Package tokensource acquires, caches and refreshes Zoom Server-to-Server
// OAuth access tokens.
//
// Zoom's account credentials grant deviates from the standard client
// credentials flow:
//   - grant_type is "account_credentials" and the account_id is required
//   - parameters are sent in the query string of the token POST
//
// # Manager
//
// A Manager owns the single cached token for the process:
//
//	m := tokensource.NewManager(credentials.NewEnvStore())
//	token, err := m.ValidToken(ctx)
//
// Cached tokens are reused until ExpiryBuffer before their real expiry.
// Concurrent callers that find the cache stale share one refresh request.
// Manager also implements oauth2.TokenSource.
package tokensource
