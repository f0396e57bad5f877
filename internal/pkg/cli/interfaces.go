// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
	"github.com/cloudslash/logsweeper/internal/pkg/sweep"
	"github.com/cloudslash/logsweeper/internal/pkg/term/prompt"
)

type logGroupLister interface {
	ListMatching(criteria sweep.Criteria) ([]cloudwatchlogs.LogGroup, error)
}

type logGroupSweeper interface {
	logGroupLister
	DeleteMany(refs []sweep.GroupRef) error
	DeleteMatching(criteria sweep.Criteria) error
}

type prompter interface {
	Confirm(message, help string, promptOpts ...prompt.Option) (bool, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}
