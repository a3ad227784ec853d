// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package config merges a config file and environment variables into command
// line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const (
	// EnvPrefix is prepended to every environment variable bound to a flag,
	// so --max-depth reads WCPS_MAX_DEPTH.
	EnvPrefix = "WCPS"
	// Name is the base name of the config file searched for in Paths.
	Name = "wcpsc"
)

type Option func(c *config)

// WithPaths replaces the directories searched for the config file. The
// default is the working directory.
func WithPaths(paths ...string) Option {
	return func(c *config) {
		c.paths = paths
	}
}

// WithName replaces the config file base name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

type config struct {
	viper *viper.Viper
	name  string
	paths []string
}

// Load applies values from the config file and the environment to every flag
// in fs that was not set on the command line. Flags set explicitly win, then
// environment variables, then the config file.
func Load(fs *pflag.FlagSet, opts ...Option) error {
	c := &config{
		viper: viper.New(),
		name:  Name,
		paths: []string{"."},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c.initializeConfig(fs)
}

func (c *config) initializeConfig(fs *pflag.FlagSet) error {
	v := c.viper
	v.SetConfigName(c.name)
	for _, path := range c.paths {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return err
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return BindFlags(fs, v, EnvPrefix)
}

// BindFlags binds dashed flag names to their underscored environment variable
// and copies any value viper holds into flags that are still unset.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper, envPrefix string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			err = multierr.Append(err, v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)))
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			err = multierr.Append(err, fs.Set(f.Name, fmt.Sprintf("%v", val)))
		}
	})
	return err
}
