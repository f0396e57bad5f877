// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	prefixFlag    = "prefix"
	olderThanFlag = "older-than"
	excludeFlag   = "exclude"
	jsonFlag      = "json"
	yesFlag       = "yes"

	// Command specific flags.
	concurrencyFlag = "concurrency"

	// Flags persisted on the root command.
	regionFlag  = "region"
	profileFlag = "profile"
)

// Short flag names.
// A short flag only exists if the flag is commonly needed by the command.
const (
	prefixFlagShort = "p"
)

// Descriptions for flags.
const (
	prefixFlagDescription    = "Only log groups whose names start with the prefix."
	olderThanFlagDescription = `Only log groups created longer than the duration ago, e.g. "720h".`
	excludeFlagDescription   = "Skip log groups whose names match the regular expression."
	jsonFlagDescription      = "Output in JSON format."
	yesFlagDescription       = "Skips confirmation prompt."

	concurrencyFlagDescription = "Number of deletions in flight at once (default 2)."

	// RegionFlagDescription documents the root command's --region flag.
	RegionFlagDescription = "AWS region to use, overriding the shared config."
	// ProfileFlagDescription documents the root command's --profile flag.
	ProfileFlagDescription = "Name of the AWS profile to use."
)

// Flag names shared with the root command.
const (
	// RegionFlag is the root command's --region flag.
	RegionFlag = regionFlag
	// ProfileFlag is the root command's --profile flag.
	ProfileFlag = profileFlag
)
