// Package credentials provides storage backends for Zoom Server-to-Server OAuth
// credentials (client ID, client secret and account ID).
//
// Supports three storage backends with different security and deployment tradeoffs:
//   - Env: Read-only environment variable access, the default
//   - File: Local JSON file with atomic writes and secure permissions
//   - Keyring: OS-native credential storage (macOS Keychain, Windows Credential Manager, etc.)
//
// Every backend is read on each token fetch attempt. Credentials are never
// cached beyond a single Read.
package credentials
