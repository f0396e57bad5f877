// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudwatchlogs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/dustin/go-humanize"
)

// humanizeTime is overridden in tests so that its output is constant as time passes.
var humanizeTime = humanize.Time

// LogGroup represents a CloudWatch Logs log group.
type LogGroup struct {
	Name string `json:"name"`
	// CreationTime is the creation time of the log group in milliseconds since the epoch.
	CreationTime    int64  `json:"creationTime"`
	RetentionInDays int64  `json:"retentionInDays,omitempty"`
	StoredBytes     int64  `json:"storedBytes"`
	ARN             string `json:"arn,omitempty"`
}

// CreatedAt returns the creation time of the log group.
func (lg LogGroup) CreatedAt() time.Time {
	return time.UnixMilli(lg.CreationTime)
}

// JSONString returns the stringified LogGroup struct in json format.
func (lg LogGroup) JSONString() (string, error) {
	b, err := json.Marshal(lg)
	if err != nil {
		return "", fmt.Errorf("marshal a log group: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

// Retention returns the retention setting of the log group in human readable format.
func (lg LogGroup) Retention() string {
	if lg.RetentionInDays == 0 {
		return "Never expire"
	}
	return fmt.Sprintf("%d days", lg.RetentionInDays)
}

// Age returns how long ago the log group was created in human readable format.
func (lg LogGroup) Age() string {
	if lg.CreationTime == 0 {
		return "-"
	}
	return humanizeTime(lg.CreatedAt())
}

func toLogGroup(lg *cloudwatchlogs.LogGroup) LogGroup {
	return LogGroup{
		Name:            aws.StringValue(lg.LogGroupName),
		CreationTime:    aws.Int64Value(lg.CreationTime),
		RetentionInDays: aws.Int64Value(lg.RetentionInDays),
		StoredBytes:     aws.Int64Value(lg.StoredBytes),
		ARN:             aws.StringValue(lg.Arn),
	}
}
