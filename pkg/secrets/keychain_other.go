//go:build !darwin

package secrets

// NewSystemBackend returns the OS keyring on platforms without the macOS
// Keychain. Access groups and accessibility are kept as part of the entry
// name rather than enforced by the platform.
func NewSystemBackend(service string) Backend {
	return NewKeyringSecretStore(service)
}
