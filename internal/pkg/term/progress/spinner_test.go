// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSpinner struct {
	started bool
	stopped bool
}

func (s *fakeSpinner) Start() { s.started = true }
func (s *fakeSpinner) Stop()  { s.stopped = true }

func TestSpinner_StartStop(t *testing.T) {
	internal := &fakeSpinner{}
	s := &Spinner{internal: internal}

	s.Start("Deleting log groups.")
	require.True(t, internal.started)

	s.Stop("Deleted 3 log groups.")
	require.True(t, internal.stopped)
}
