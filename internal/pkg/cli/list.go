// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
	"github.com/cloudslash/logsweeper/internal/pkg/aws/sessions"
	"github.com/cloudslash/logsweeper/internal/pkg/config"
	"github.com/cloudslash/logsweeper/internal/pkg/sweep"
	"github.com/cloudslash/logsweeper/internal/pkg/term/log"
)

// Table display settings.
const (
	minCellWidth           = 20  // minimum number of characters in a table's cell.
	tabWidth               = 4   // number of characters in between columns.
	cellPaddingWidth       = 2   // number of padding characters added by default to a cell.
	paddingChar            = ' ' // character in between columns.
	noAdditionalFormatting = 0
)

type listVars struct {
	*GlobalOpts
	prefix           string
	olderThan        time.Duration
	exclude          string
	shouldOutputJSON bool
}

type listOpts struct {
	listVars

	// Compiled from the exclude flag during Validate.
	excludePattern *regexp.Regexp

	lister logGroupLister
	w      io.Writer
}

func newListOpts(vars listVars) (*listOpts, error) {
	conf, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	if vars.exclude == "" {
		vars.exclude = conf.Exclude
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
	return &listOpts{
		listVars: vars,
		lister:   sweep.New(sess),
		w:        log.OutputWriter,
	}, nil
}

// Validate returns an error if the flag values are invalid.
func (o *listOpts) Validate() error {
	if o.listVars.olderThan < 0 {
		return &errDurationNegative{flag: olderThanFlag, value: o.listVars.olderThan}
	}
	if o.listVars.exclude != "" {
		pattern, err := regexp.Compile(o.listVars.exclude)
		if err != nil {
			return fmt.Errorf("compile --%s pattern: %w", excludeFlag, err)
		}
		o.excludePattern = pattern
	}
	return nil
}

// Execute lists the log groups that match the filter criteria.
func (o *listOpts) Execute() error {
	groups, err := o.lister.ListMatching(o.criteria())
	if err != nil {
		return err
	}
	if o.shouldOutputJSON {
		data, err := jsonOutput(groups)
		if err != nil {
			return err
		}
		fmt.Fprint(o.w, data)
		return nil
	}
	writeGroupsTable(o.w, groups)
	return nil
}

func (o *listOpts) criteria() sweep.Criteria {
	criteria := sweep.Criteria{
		Prefix:  o.prefix,
		Exclude: o.excludePattern,
	}
	if o.olderThan > 0 {
		criteria.CreatedBefore = time.Now().Add(-o.olderThan)
	}
	return criteria
}

func jsonOutput(groups []cloudwatchlogs.LogGroup) (string, error) {
	type serialized struct {
		LogGroups []cloudwatchlogs.LogGroup `json:"logGroups"`
	}
	b, err := json.Marshal(serialized{LogGroups: groups})
	if err != nil {
		return "", fmt.Errorf("marshal log groups: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

func writeGroupsTable(w io.Writer, groups []cloudwatchlogs.LogGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No log groups found.")
		return
	}
	tw := tabwriter.NewWriter(w, minCellWidth, tabWidth, cellPaddingWidth, paddingChar, noAdditionalFormatting)
	fmt.Fprintln(tw, "Name\tCreated\tRetention\tStored")
	for _, lg := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lg.Name, lg.Age(), lg.Retention(), humanize.Bytes(uint64(lg.StoredBytes)))
	}
	tw.Flush()
}

// BuildListCmd builds the command for listing log groups that match the filter criteria.
func BuildListCmd() *cobra.Command {
	vars := listVars{
		GlobalOpts: NewGlobalOpts(),
	}
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Lists log groups that match the filter criteria.",
		Example: `  Lists the log groups under "/ecs/" created more than 30 days ago.
  $ logsweeper ls --prefix /ecs/ --older-than 720h`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newListOpts(vars)
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
	cmd.Flags().BoolVar(&vars.shouldOutputJSON, jsonFlag, false, jsonFlagDescription)
	return cmd
}
