// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress provides an indicator that a long operation is taking place.
package progress

import (
	"fmt"
	"io"
	"time"

	spin "github.com/briandowns/spinner"
)

type spinner interface {
	Start()
	Stop()
}

// Spinner is an indicator that a long operation is taking place.
type Spinner struct {
	internal spinner
}

// NewSpinner returns a Spinner that writes to the given writer.
func NewSpinner(w io.Writer) *Spinner {
	s := spin.New(charset, 125*time.Millisecond, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		internal: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	s.suffix(fmt.Sprintf(" %s", label))
	s.internal.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	s.finalMSG(fmt.Sprintf("%s\n", label))
	s.internal.Stop()
}

func (s *Spinner) suffix(label string) {
	if spinner, ok := s.internal.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.Suffix = label
	}
}

func (s *Spinner) finalMSG(label string) {
	if spinner, ok := s.internal.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.FinalMSG = label
	}
}
