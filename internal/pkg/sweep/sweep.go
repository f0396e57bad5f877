// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sweep discovers and deletes stale Amazon CloudWatch Logs log groups.
package sweep

import (
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
)

// defaultConcurrency is the number of log group deletions in flight at once.
// CloudWatch Logs throttles DeleteLogGroup aggressively, so the default is low.
const defaultConcurrency = 2

type api interface {
	ListLogGroups(prefix, nextToken string) (*cloudwatchlogs.ListLogGroupsOutput, error)
	DeleteLogGroup(name string) error
}

// Sweeper lists and deletes log groups.
type Sweeper struct {
	client      api
	concurrency int

	// now is overridden in tests.
	now func() time.Time
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithConcurrency sets the number of deletions that may be in flight at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(s *Sweeper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New returns a Sweeper configured against the input session.
func New(s *session.Session, opts ...Option) *Sweeper {
	sweeper := &Sweeper{
		client:      cloudwatchlogs.New(s),
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(sweeper)
	}
	return sweeper
}

// Criteria filters the log groups returned by ListMatching.
type Criteria struct {
	// CreatedBefore keeps only log groups created strictly before this time.
	// The zero value means the time ListMatching is called.
	CreatedBefore time.Time

	// Prefix restricts the enumeration to log groups whose names start with it.
	// The prefix is pushed down to the service so that fewer pages are fetched,
	// but it never changes which log groups match.
	Prefix string

	// Exclude drops log groups whose names match it.
	Exclude *regexp.Regexp
}

func (c Criteria) matches(lg cloudwatchlogs.LogGroup, cutoff time.Time) bool {
	if lg.CreationTime >= cutoff.UnixMilli() {
		return false
	}
	if c.Exclude != nil && c.Exclude.MatchString(lg.Name) {
		return false
	}
	// The service already filters on the prefix; keep the check as a backstop.
	if c.Prefix != "" && !strings.HasPrefix(lg.Name, c.Prefix) {
		return false
	}
	return true
}

// ListMatching returns every log group that matches the criteria.
// Pages are fetched one at a time and filtered locally; the order the service
// returned the log groups in is preserved. Any page error aborts the
// enumeration and no partial result is returned.
func (s *Sweeper) ListMatching(criteria Criteria) ([]cloudwatchlogs.LogGroup, error) {
	cutoff := criteria.CreatedBefore
	if cutoff.IsZero() {
		cutoff = s.now()
	}
	var matched []cloudwatchlogs.LogGroup
	var nextToken string
	for {
		page, err := s.client.ListLogGroups(criteria.Prefix, nextToken)
		if err != nil {
			return nil, err
		}
		for _, lg := range page.LogGroups {
			if criteria.matches(lg, cutoff) {
				matched = append(matched, lg)
			}
		}
		if page.NextToken == nil {
			break
		}
		nextToken = aws.StringValue(page.NextToken)
	}
	return matched, nil
}

// ListAll returns every log group created before the time of the call.
func (s *Sweeper) ListAll() ([]cloudwatchlogs.LogGroup, error) {
	return s.ListMatching(Criteria{})
}

// DeleteMatching deletes every log group that matches the criteria.
// The set deleted is exactly the set ListMatching returns; if the enumeration
// fails no deletion is attempted.
func (s *Sweeper) DeleteMatching(criteria Criteria) error {
	groups, err := s.ListMatching(criteria)
	if err != nil {
		return err
	}
	return s.DeleteMany(Groups(groups))
}
