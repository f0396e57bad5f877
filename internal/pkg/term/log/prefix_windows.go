// Copyright 2019 Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

const (
	successPrefix = "√ Success!"
	errorPrefix   = "X Error!"
)
