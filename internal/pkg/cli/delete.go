// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudslash/logsweeper/internal/pkg/aws/sessions"
	"github.com/cloudslash/logsweeper/internal/pkg/config"
	"github.com/cloudslash/logsweeper/internal/pkg/sweep"
	"github.com/cloudslash/logsweeper/internal/pkg/term/color"
	"github.com/cloudslash/logsweeper/internal/pkg/term/log"
	termprogress "github.com/cloudslash/logsweeper/internal/pkg/term/progress"
)

const (
	fmtDeleteConfirmPrompt = "Are you sure you want to delete %d log groups?"
	deleteConfirmHelp      = "Deleted log groups and their log events cannot be recovered."
)

type deleteVars struct {
	*GlobalOpts
	prefix           string
	olderThan        time.Duration
	exclude          string
	skipConfirmation bool
	concurrency      int
}

type deleteOpts struct {
	deleteVars

	// Compiled from the exclude flag during Validate.
	excludePattern *regexp.Regexp

	sweeper logGroupSweeper
	spinner progress
}

func newDeleteOpts(vars deleteVars) (*deleteOpts, error) {
	conf, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	if vars.exclude == "" {
		vars.exclude = conf.Exclude
	}
	if vars.concurrency == 0 {
		vars.concurrency = conf.Concurrency
	}
	region := vars.Region()
	if region == "" {
		region = conf.Region
	}
	profile := vars.Profile()
	if profile == "" {
		profile = conf.Profile
	}
	sess, err := sessions.NewProvider(sessions.WithRegion(region), sessions.WithProfile(profile)).Session()
	if err != nil {
		return nil, err
	}
	return &deleteOpts{
		deleteVars: vars,
		sweeper:    sweep.New(sess, sweep.WithConcurrency(vars.concurrency)),
		spinner:    termprogress.NewSpinner(log.DiagnosticWriter),
	}, nil
}

// Validate returns an error if the flag values are invalid.
func (o *deleteOpts) Validate() error {
	if o.deleteVars.olderThan < 0 {
		return &errDurationNegative{flag: olderThanFlag, value: o.deleteVars.olderThan}
	}
	if o.deleteVars.concurrency < 0 {
		return fmt.Errorf("--%s must be a positive number, got %d", concurrencyFlag, o.deleteVars.concurrency)
	}
	if o.deleteVars.exclude != "" {
		pattern, err := regexp.Compile(o.deleteVars.exclude)
		if err != nil {
			return fmt.Errorf("compile --%s pattern: %w", excludeFlag, err)
		}
		o.excludePattern = pattern
	}
	return nil
}

// Execute deletes the log groups that match the filter criteria.
// Unless the confirmation is skipped, the matching log groups are shown and
// the user is asked to confirm before anything is deleted.
func (o *deleteOpts) Execute() error {
	if o.skipConfirmation {
		return o.deleteMatching()
	}
	groups, err := o.sweeper.ListMatching(o.criteria())
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		log.Infoln("No log groups match the criteria.")
		return nil
	}
	for _, lg := range groups {
		log.Infof("  %s\n", color.HighlightResource(lg.Name))
	}
	confirmed, err := o.prompt.Confirm(fmt.Sprintf(fmtDeleteConfirmPrompt, len(groups)), deleteConfirmHelp)
	if err != nil {
		return fmt.Errorf("delete confirmation prompt: %w", err)
	}
	if !confirmed {
		return errDeleteCancelled
	}
	o.spinner.Start(fmt.Sprintf("Deleting %d log groups.", len(groups)))
	if err := o.sweeper.DeleteMany(sweep.Groups(groups)); err != nil {
		o.spinner.Stop(log.Serrorf("Failed to delete log groups.\n"))
		return err
	}
	o.spinner.Stop(log.Ssuccessf("Deleted %d log groups.\n", len(groups)))
	return nil
}

func (o *deleteOpts) deleteMatching() error {
	o.spinner.Start("Deleting log groups.")
	if err := o.sweeper.DeleteMatching(o.criteria()); err != nil {
		o.spinner.Stop(log.Serrorf("Failed to delete log groups.\n"))
		return err
	}
	o.spinner.Stop(log.Ssuccessf("Deleted matching log groups.\n"))
	return nil
}

func (o *deleteOpts) criteria() sweep.Criteria {
	criteria := sweep.Criteria{
		Prefix:  o.prefix,
		Exclude: o.excludePattern,
	}
	if o.olderThan > 0 {
		criteria.CreatedBefore = time.Now().Add(-o.olderThan)
	}
	return criteria
}

// BuildDeleteCmd builds the command for deleting log groups that match the filter criteria.
func BuildDeleteCmd() *cobra.Command {
	vars := deleteVars{
		GlobalOpts: NewGlobalOpts(),
	}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes log groups that match the filter criteria.",
		Example: `  Deletes the log groups under "/ecs/" created more than 30 days ago,
  keeping the ones whose names match "prod".
  $ logsweeper delete --prefix /ecs/ --older-than 720h --exclude prod`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newDeleteOpts(vars)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Execute()
		}),
	}
	cmd.Flags().StringVarP(&vars.prefix, prefixFlag, prefixFlagShort, "", prefixFlagDescription)
	cmd.Flags().DurationVar(&vars.olderThan, olderThanFlag, 0, olderThanFlagDescription)
	cmd.Flags().StringVar(&vars.exclude, excludeFlag, "", excludeFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	cmd.Flags().IntVar(&vars.concurrency, concurrencyFlag, 0, concurrencyFlagDescription)
	return cmd
}
