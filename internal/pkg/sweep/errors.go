// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sweep

// ErrInvalidGroupRef means a log group reference does not identify any log group.
type ErrInvalidGroupRef struct{}

func (e *ErrInvalidGroupRef) Error() string {
	return "log group reference is missing a name"
}
