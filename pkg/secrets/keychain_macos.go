//go:build darwin && !ios

package secrets

// The macOS keychain has no passcode-bound accessibility class.
const passcodePolicySupported = false
