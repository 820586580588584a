package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alapierre/credstore/pkg/config"
	"github.com/alapierre/credstore/pkg/logging"
	"github.com/alapierre/credstore/pkg/secrets"
)

var logger = logging.Component("pkg/profile")

const (
	BackendSystem  = "system"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"

	DefaultService = "credstore"
)

// Profile is a named set of store settings kept under the config directory.
type Profile struct {
	Name          string
	Backend       string
	Service       string
	AccessGroup   string
	Accessibility secrets.Accessibility
}

// FromConfig builds a profile from merged configuration, applying defaults.
func FromConfig(name string, cfg config.Config) (*Profile, error) {
	access, err := secrets.ParseAccessibility(cfg.Get(config.KeyAccessibility, ""))
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Name:          name,
		Backend:       cfg.Get(config.KeyBackend, BackendSystem),
		Service:       cfg.Get(config.KeyService, DefaultService),
		AccessGroup:   cfg.Get(config.KeyAccessGroup, ""),
		Accessibility: access,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) Validate() error {
	switch p.Backend {
	case BackendSystem, BackendKeyring, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", p.Backend, BackendSystem, BackendKeyring, BackendMemory)
	}
	if p.Service == "" {
		return fmt.Errorf("service name must not be empty")
	}
	return nil
}

// NewBackend opens the backend the profile names.
func (p *Profile) NewBackend() (secrets.Backend, error) {
	logger.Debugf("Opening %s backend for service %s", p.Backend, p.Service)
	switch p.Backend {
	case BackendSystem:
		return secrets.NewSystemBackend(p.Service), nil
	case BackendKeyring:
		return secrets.NewKeyringSecretStore(p.Service), nil
	case BackendMemory:
		return secrets.NewInMemorySecretStore(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", p.Backend)
}

func Load(configDir, name string) (*Profile, error) {
	path := GetProfilePath(configDir, name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(name, cfg)
}

func Save(configDir string, p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	path := GetProfilePath(configDir, p.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	logger.Debugf("Writing profile %s to %s", p.Name, path)
	return os.WriteFile(path, []byte(ToEnvSnippet(p)), 0600)
}

func GetProfilePath(configDir, name string) string {
	return filepath.Join(configDir, "profiles", name+".env")
}

func ToEnvSnippet(p *Profile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s=%s\n", config.KeyBackend, p.Backend))
	sb.WriteString(fmt.Sprintf("%s=%s\n", config.KeyService, p.Service))
	if p.AccessGroup != "" {
		sb.WriteString(fmt.Sprintf("%s=%s\n", config.KeyAccessGroup, p.AccessGroup))
	}
	if p.Accessibility != secrets.AccessibleDefault {
		sb.WriteString(fmt.Sprintf("%s=%s\n", config.KeyAccessibility, p.Accessibility))
	}
	return sb.String()
}
