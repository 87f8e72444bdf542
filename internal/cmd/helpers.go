package cmd

import (
	"hintline/internal/config"
	"hintline/internal/keybind"
)

// loadSetup reads the config and resolves the keymap it points at.
// An empty path falls back to the default config location.
func loadSetup(configPath string) (*config.Config, keybind.Keymap, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, nil, err
	}

	km := keybind.Default()
	if cfg.Keymap != "" {
		km, err = keybind.LoadKeymap(cfg.Keymap)
		if err != nil {
			return nil, nil, err
		}
	}
	return cfg, km, nil
}
