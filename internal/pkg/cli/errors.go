// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"time"
)

var errDeleteCancelled = errors.New("delete cancelled - no log groups were deleted")

type errDurationNegative struct {
	flag  string
	value time.Duration
}

func (e *errDurationNegative) Error() string {
	return fmt.Sprintf("--%s must be a positive duration, got %s", e.flag, e.value)
}
