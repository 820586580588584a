//go:build darwin && ios

package secrets

const passcodePolicySupported = true
