// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"

	"github.com/modrecipes/recipe-check/internal/multierror"
)

// ConfigurationFile is the name of the optional run configuration file,
// expected in the working directory.
const ConfigurationFile = "recipe-check.yml"

// supportedFormatVersions bounds the configuration format versions this
// build of the tool understands.
const supportedFormatVersions = "^1.0.0"

// Configuration represents the optional recipe-check.yml run configuration.
type Configuration struct {
	// FormatVersion is the version of the configuration format. Must satisfy
	// the supported constraint when present.
	FormatVersion string `config:"format_version"`

	// RecipesDir overrides the default recipes root when the command line
	// does not provide one.
	RecipesDir string `config:"recipes_dir"`

	// ExtraTypes lists additional recipe types that should be accepted as
	// known, with presence-only validation. Useful for modpack-private
	// recipe types that would otherwise be reported as unknown.
	ExtraTypes []string `config:"extra_types"`
}

// LoadConfiguration reads recipe-check.yml from the given directory. A missing
// file is not an error, the zero configuration is returned instead.
func LoadConfiguration(dir string) (*Configuration, error) {
	configPath := filepath.Join(dir, ConfigurationFile)
	_, err := os.Stat(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return &Configuration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't stat configuration file (path: %s): %w", configPath, err)
	}

	cfg, err := yaml.NewConfigWithFile(configPath, ucfg.PathSep("."))
	if err != nil {
		return nil, fmt.Errorf("reading configuration file failed (path: %s): %w", configPath, err)
	}

	var c Configuration
	err = cfg.Unpack(&c)
	if err != nil {
		return nil, fmt.Errorf("unpacking configuration file failed (path: %s): %w", configPath, err)
	}

	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file (path: %s): %w", configPath, err)
	}
	return &c, nil
}

// Validate checks the semantic constraints of the configuration.
func (c *Configuration) Validate() error {
	var errs multierror.Error

	if c.FormatVersion != "" {
		version, err := semver.NewVersion(c.FormatVersion)
		if err != nil {
			errs = append(errs, fmt.Errorf("format_version %q is not a valid semantic version: %w", c.FormatVersion, err))
		} else {
			supported, err := semver.NewConstraint(supportedFormatVersions)
			if err != nil {
				return fmt.Errorf("parsing supported format versions failed: %w", err)
			}
			if !supported.Check(version) {
				errs = append(errs, fmt.Errorf("format_version %q is not supported (supported: %s)", c.FormatVersion, supportedFormatVersions))
			}
		}
	}

	for _, extraType := range c.ExtraTypes {
		if extraType == "" {
			errs = append(errs, fmt.Errorf("extra_types must not contain empty entries"))
		}
	}

	if len(errs) > 0 {
		return errs.Unique()
	}
	return nil
}
