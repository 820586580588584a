package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alapierre/credstore/internal/support"
	"github.com/alapierre/credstore/pkg/config"
	"github.com/alapierre/credstore/pkg/credstore"
	"github.com/alapierre/credstore/pkg/logging"
	"github.com/alapierre/credstore/pkg/profile"
	"github.com/alecthomas/kong"
)

var logger = logging.Component("internal/cli")

type Globals struct {
	Verbose        bool   `help:"Enable verbose logging." short:"v"`
	NonInteractive bool   `help:"Disable interactive prompts."`
	LogToFile      bool   `help:"Enable logging to file." env:"CREDSTORE_LOG_TO_FILE"`
	LogFilePath    string `help:"Override default log file path." env:"CREDSTORE_LOG_FILE"`
	ConfigDir      string `help:"Override configuration directory."`
	Profile        string `help:"Named profile to load settings from."`
	Backend        string `help:"Credential backend: system or keyring. memory keeps secrets only for the life of one process and is meant for testing."`
	Service        string `help:"Service name grouping all entries."`
	AccessGroup    string `help:"Access group to scope entries to."`
	Accessibility  string `help:"Accessibility policy, e.g. when-unlocked or after-first-unlock."`
}

type CLI struct {
	Globals `embed:""`

	Set       SetCmd       `cmd:"" help:"Store a new secret. Fails if the key already exists."`
	Get       GetCmd       `cmd:"" help:"Print a stored secret."`
	Update    UpdateCmd    `cmd:"" help:"Replace the value of an existing secret."`
	Delete    DeleteCmd    `cmd:"" help:"Delete a secret."`
	DeleteAll DeleteAllCmd `cmd:"" name:"delete-all" help:"Delete every secret of the service."`
	Profiles  ProfileCmd   `cmd:"" name:"profile" help:"Profile management."`
	Version   VersionCmd   `cmd:"" help:"Show application version."`
}

func Main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("credstore"),
		kong.Description("Typed access to the platform credential store"),
		kong.UsageOnError(),
	)

	logPath := cli.Globals.LogFilePath
	if cli.Globals.LogToFile && logPath == "" {
		logPath = filepath.Join(logging.GetDefaultLogDir(), "credstore.log")
	}

	logging.SetupLogging(cli.Globals.Verbose, logPath)

	err := kctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (g *Globals) overrides() config.Config {
	return config.Config{
		config.KeyBackend:       g.Backend,
		config.KeyService:       g.Service,
		config.KeyAccessGroup:   g.AccessGroup,
		config.KeyAccessibility: g.Accessibility,
	}
}

func (g *Globals) resolveProfile() (*profile.Profile, error) {
	return support.ResolveProfile(support.GetConfigDir(g.ConfigDir), g.Profile, g.overrides())
}

// openStore builds the store described by flags, environment and profile.
func (g *Globals) openStore() (*credstore.Store, *profile.Profile, error) {
	p, err := g.resolveProfile()
	if err != nil {
		return nil, nil, err
	}
	backend, err := p.NewBackend()
	if err != nil {
		return nil, nil, err
	}
	store := credstore.New(backend)
	if p.AccessGroup != "" {
		store.ConfigureAccessGroup(p.AccessGroup)
	}
	logger.Debugf("Using %s backend, service %s, accessibility %s", p.Backend, p.Service, p.Accessibility)
	return store, p, nil
}
