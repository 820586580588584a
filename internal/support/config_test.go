package support

import (
	"testing"

	"github.com/alapierre/credstore/pkg/config"
	"github.com/alapierre/credstore/pkg/profile"
	"github.com/alapierre/credstore/pkg/secrets"
)

func TestResolveProfilePrecedence(t *testing.T) {
	dir := t.TempDir()
	err := profile.Save(dir, &profile.Profile{
		Name:          "dev",
		Backend:       profile.BackendKeyring,
		Service:       "from-profile",
		AccessGroup:   "group-from-profile",
		Accessibility: secrets.AccessibleAfterFirstUnlock,
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv(config.KeyService, "from-env")

	p, err := ResolveProfile(dir, "dev", config.Config{config.KeyBackend: profile.BackendMemory})
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}
	if p.Backend != profile.BackendMemory {
		t.Errorf("Override should win, got %s", p.Backend)
	}
	if p.Service != "from-env" {
		t.Errorf("Environment should beat profile, got %s", p.Service)
	}
	if p.AccessGroup != "group-from-profile" || p.Accessibility != secrets.AccessibleAfterFirstUnlock {
		t.Errorf("Profile values lost: %+v", p)
	}
}

func TestResolveProfileDefaults(t *testing.T) {
	p, err := ResolveProfile(t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}
	if p.Backend != profile.BackendSystem || p.Service != profile.DefaultService {
		t.Errorf("Unexpected defaults %+v", p)
	}
}
