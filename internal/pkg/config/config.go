// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config reads the user's optional logsweeper configuration file.
// The file holds defaults for flags that rarely change between runs:
//
//	region: us-west-2
//	profile: dev
//	concurrency: 2
//	exclude: ^/aws/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file under the user's home directory.
const FileName = ".logsweeper.yml"

// Config holds default values for the CLI's flags.
type Config struct {
	Region      string `yaml:"region"`
	Profile     string `yaml:"profile"`
	Concurrency int    `yaml:"concurrency"`
	Exclude     string `yaml:"exclude"`
}

// Loader reads the configuration file from the user's home directory.
type Loader struct {
	fs *afero.Afero

	// homeDir is overridden in tests.
	homeDir func() (string, error)
}

// NewLoader returns a Loader backed by the OS filesystem.
func NewLoader() *Loader {
	return &Loader{
		fs:      &afero.Afero{Fs: afero.NewOsFs()},
		homeDir: os.UserHomeDir,
	}
}

// Load returns the parsed configuration file.
// A missing file is not an error; the zero Config is returned instead.
func (l *Loader) Load() (*Config, error) {
	home, err := l.homeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}
	path := filepath.Join(home, FileName)
	exists, err := l.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("check if %s exists: %w", path, err)
	}
	if !exists {
		return &Config{}, nil
	}
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var conf Config
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &conf, nil
}
