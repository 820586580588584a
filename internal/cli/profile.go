package cli

import (
	"fmt"

	"github.com/alapierre/credstore/internal/support"
	"github.com/alapierre/credstore/pkg/profile"
	"github.com/alapierre/credstore/pkg/secrets"
)

type ProfileCmd struct {
	Init ProfileInitCmd `cmd:"" help:"Create or overwrite a profile."`
	Show ProfileShowCmd `cmd:"" help:"Show the effective settings of a profile."`
}

// ProfileInitCmd saves the global --backend, --service, --access-group and
// --accessibility flags under a profile name.
type ProfileInitCmd struct {
	Name string `arg:"" help:"Profile name."`
}

func (c *ProfileInitCmd) Run(g *Globals) error {
	access, err := secrets.ParseAccessibility(g.Accessibility)
	if err != nil {
		return err
	}
	p := &profile.Profile{
		Name:          c.Name,
		Backend:       g.Backend,
		Service:       g.Service,
		AccessGroup:   g.AccessGroup,
		Accessibility: access,
	}
	if p.Backend == "" {
		p.Backend = profile.BackendSystem
	}
	if p.Service == "" {
		p.Service = profile.DefaultService
	}
	configDir := support.GetConfigDir(g.ConfigDir)
	if err := profile.Save(configDir, p); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	fmt.Printf("Profile %s initialized at %s\n", c.Name, profile.GetProfilePath(configDir, c.Name))
	logger.Infof("Successfully initialized profile %s", c.Name)
	return nil
}

type ProfileShowCmd struct {
	Name string `arg:"" optional:"" help:"Profile name (defaults to the global --profile)."`
}

func (c *ProfileShowCmd) Run(g *Globals) error {
	name := c.Name
	if name == "" {
		name = g.Profile
	}
	p, err := support.ResolveProfile(support.GetConfigDir(g.ConfigDir), name, g.overrides())
	if err != nil {
		return err
	}
	fmt.Print(profile.ToEnvSnippet(p))
	return nil
}
