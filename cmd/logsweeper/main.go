// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command of the logsweeper CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudslash/logsweeper/internal/pkg/cli"
	"github.com/cloudslash/logsweeper/internal/pkg/term/color"
	"github.com/cloudslash/logsweeper/internal/pkg/term/log"
	"github.com/cloudslash/logsweeper/internal/pkg/version"
)

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

// actionRecommender is satisfied by errors that can suggest a followup to the user.
type actionRecommender interface {
	RecommendActions() string
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Errorln(err.Error())

		var recommender actionRecommender
		if errors.As(err, &recommender) {
			log.Infoln(recommender.RecommendActions())
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logsweeper",
		Short: "Find and delete stale CloudWatch Logs log groups.",
		Example: `  List the log groups under "/ecs/" older than 30 days.
  $ logsweeper ls --prefix /ecs/ --older-than 720h

  Delete them after confirming.
  $ logsweeper delete --prefix /ecs/ --older-than 720h`,
		// We don't want to show the usage text on runtime errors,
		// and errors are printed by main so cobra shouldn't repeat them.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("logsweeper version: {{.Version}}\n")

	cmd.PersistentFlags().String(cli.RegionFlag, "", cli.RegionFlagDescription)
	cmd.PersistentFlags().String(cli.ProfileFlag, "", cli.ProfileFlagDescription)
	_ = viper.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(cli.BuildListCmd())
	cmd.AddCommand(cli.BuildDeleteCmd())

	return cmd
}
