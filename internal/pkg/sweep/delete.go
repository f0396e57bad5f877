// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
)

// GroupRef identifies a log group to delete, either by a descriptor returned
// from ListMatching or by its bare name. The zero value is invalid.
type GroupRef struct {
	name string
}

// Name returns a GroupRef for the log group with the given name.
func Name(name string) GroupRef {
	return GroupRef{name: name}
}

// Group returns a GroupRef for a log group descriptor.
func Group(lg cloudwatchlogs.LogGroup) GroupRef {
	return GroupRef{name: lg.Name}
}

// Groups converts log group descriptors to deletion refs.
func Groups(groups []cloudwatchlogs.LogGroup) []GroupRef {
	refs := make([]GroupRef, len(groups))
	for i, lg := range groups {
		refs[i] = Group(lg)
	}
	return refs
}

func (r GroupRef) logGroupName() (string, error) {
	if r.name == "" {
		return "", &ErrInvalidGroupRef{}
	}
	return r.name, nil
}

// DeleteOne deletes the referenced log group. The ref is validated before any
// request is made; the service's error, if any, is returned unmodified.
func (s *Sweeper) DeleteOne(ref GroupRef) error {
	name, err := ref.logGroupName()
	if err != nil {
		return err
	}
	return s.client.DeleteLogGroup(name)
}

// DeleteMany deletes the referenced log groups with a bounded number of
// deletions in flight. The first failure stops the dispatch of any deletion
// that has not started yet; deletions already in flight run to completion.
// Exactly the first error observed is returned. An empty refs slice succeeds
// without making any request.
func (s *Sweeper) DeleteMany(refs []GroupRef) error {
	if len(refs) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(s.concurrency)
	for _, ref := range refs {
		// The context is done once a deletion has failed. Refs that were
		// dispatched before the failure was observed still run.
		if ctx.Err() != nil {
			break
		}
		ref := ref
		g.Go(func() error {
			return s.DeleteOne(ref)
		})
	}
	return g.Wait()
}
