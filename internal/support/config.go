package support

import (
	"path/filepath"

	"github.com/alapierre/credstore/pkg/config"
	"github.com/alapierre/credstore/pkg/logging"
	"github.com/alapierre/credstore/pkg/profile"
)

var logger = logging.Component("support")

// LoadMergedConfig merges, highest priority first: overrides, environment,
// the named profile, and config.env in the config directory.
func LoadMergedConfig(configDir, profileName string, overrides config.Config) (config.Config, error) {
	envCfg := config.GetEnvConfig()
	if profileName == "" {
		profileName = envCfg.Get(config.KeyProfile, "")
	}

	baseCfg, err := config.LoadFile(filepath.Join(configDir, "config.env"))
	if err != nil {
		return nil, err
	}

	profileCfg := make(config.Config)
	if profileName != "" {
		profileCfg, err = config.LoadFile(profile.GetProfilePath(configDir, profileName))
		if err != nil {
			return nil, err
		}
		if len(profileCfg) == 0 {
			logger.Warnf("Profile %s is empty or missing", profileName)
		}
	}

	return config.MergeConfigs(overrides, envCfg, profileCfg, baseCfg), nil
}

// ResolveProfile returns the effective store settings.
func ResolveProfile(configDir, profileName string, overrides config.Config) (*profile.Profile, error) {
	cfg, err := LoadMergedConfig(configDir, profileName, overrides)
	if err != nil {
		return nil, err
	}
	return profile.FromConfig(profileName, cfg)
}
