package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of all the CLI settings,
// e.g. VSEPR_ELEMENTS for --elements.
const envPrefix = "VSEPR"

// Setting keys. Each one can come from its flag, a VSEPR_ variable or the
// config file, in that order of precedence.
const (
	keyVerbose  = "verbose"
	keyElements = "elements"
	keyElement  = "element"
)

// newViper builds a viper instance with the CLI's standard settings: TOML
// config files, VSEPR_ env prefix and automatic env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// bound records err, the result of binding the flag for key, to be
// reported by readConfig.
func (c *CLI) bound(key string, err error) {
	if err != nil {
		c.bindErrs = append(c.bindErrs, fmt.Errorf("config: failed to bind flag %q: %w", key, err))
	}
}

// readConfig fails if any flag could not be bound, and reads the file
// given with --config, if any.
func (c *CLI) readConfig() error {
	if err := errors.Join(c.bindErrs...); err != nil {
		return err
	}
	if c.config == "" {
		return nil
	}
	c.v.SetConfigFile(c.config)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", c.config, err)
	}
	return nil
}
