// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the logsweeper subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudslash/logsweeper/internal/pkg/term/prompt"
)

// GlobalOpts holds fields that are used across multiple commands.
type GlobalOpts struct {
	region  string
	profile string
	prompt  prompter
}

// NewGlobalOpts returns a GlobalOpts with a default prompter.
func NewGlobalOpts() *GlobalOpts {
	return &GlobalOpts{
		prompt: prompt.New(),
	}
}

// Region returns the region override.
// If the region is empty, it caches it after querying viper.
func (o *GlobalOpts) Region() string {
	if o.region != "" {
		return o.region
	}
	o.region = viper.GetString(regionFlag)
	return o.region
}

// Profile returns the AWS profile override.
// If the profile is empty, it caches it after querying viper.
func (o *GlobalOpts) Profile() string {
	if o.profile != "" {
		return o.profile
	}
	o.profile = viper.GetString(profileFlag)
	return o.profile
}

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}
