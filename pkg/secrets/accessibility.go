package secrets

import (
	"fmt"
	"strings"
)

// Accessibility controls when a stored value may be read.
type Accessibility int

const (
	// AccessibleDefault resolves to AccessibleWhenUnlocked.
	AccessibleDefault Accessibility = iota
	AccessibleWhenUnlocked
	AccessibleAfterFirstUnlock
	AccessibleWhenUnlockedThisDeviceOnly
	AccessibleAfterFirstUnlockThisDeviceOnly
	AccessibleWhenPasscodeSetThisDeviceOnly
)

var accessibilityNames = map[Accessibility]string{
	AccessibleWhenUnlocked:                   "when-unlocked",
	AccessibleAfterFirstUnlock:               "after-first-unlock",
	AccessibleWhenUnlockedThisDeviceOnly:     "when-unlocked-this-device-only",
	AccessibleAfterFirstUnlockThisDeviceOnly: "after-first-unlock-this-device-only",
	AccessibleWhenPasscodeSetThisDeviceOnly:  "when-passcode-set-this-device-only",
}

// Resolve maps AccessibleDefault to the effective policy.
func (a Accessibility) Resolve() Accessibility {
	if a == AccessibleDefault {
		return AccessibleWhenUnlocked
	}
	return a
}

func (a Accessibility) String() string {
	if name, ok := accessibilityNames[a.Resolve()]; ok {
		return name
	}
	return fmt.Sprintf("accessibility(%d)", int(a))
}

// ParseAccessibility accepts the names produced by String. An empty string
// yields AccessibleDefault.
func ParseAccessibility(s string) (Accessibility, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		return AccessibleDefault, nil
	}
	for a, name := range accessibilityNames {
		if name == s {
			return a, nil
		}
	}
	return AccessibleDefault, fmt.Errorf("unknown accessibility %q", s)
}
