// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudwatchlogs provides a client to make API requests to Amazon CloudWatch Logs.
package cloudwatchlogs

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
)

// pageLimit is the maximum number of log groups DescribeLogGroups returns per call.
const pageLimit = 50

type api interface {
	DescribeLogGroups(input *cloudwatchlogs.DescribeLogGroupsInput) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
	DeleteLogGroup(input *cloudwatchlogs.DeleteLogGroupInput) (*cloudwatchlogs.DeleteLogGroupOutput, error)
}

// CloudWatchLogs wraps an AWS CloudWatch Logs client.
type CloudWatchLogs struct {
	client api
}

// New returns a CloudWatchLogs configured against the input session.
func New(s *session.Session) *CloudWatchLogs {
	return &CloudWatchLogs{
		client: cloudwatchlogs.New(s),
	}
}

// ListLogGroupsOutput contains a single page of log group descriptors.
type ListLogGroupsOutput struct {
	// Log groups in the order the service returned them.
	LogGroups []LogGroup
	// Token for the next page. Nil when this is the last page.
	NextToken *string
}

// ListLogGroups returns one page of log group descriptors whose names start with prefix.
// An empty prefix matches every log group. Pass the NextToken of the previous page to
// continue the enumeration, or an empty token to start from the beginning.
func (c *CloudWatchLogs) ListLogGroups(prefix, nextToken string) (*ListLogGroupsOutput, error) {
	in := &cloudwatchlogs.DescribeLogGroupsInput{
		Limit: aws.Int64(pageLimit),
	}
	if prefix != "" {
		in.LogGroupNamePrefix = aws.String(prefix)
	}
	if nextToken != "" {
		in.NextToken = aws.String(nextToken)
	}
	resp, err := c.client.DescribeLogGroups(in)
	if err != nil {
		return nil, fmt.Errorf("describe log groups: %w", err)
	}
	out := &ListLogGroupsOutput{
		NextToken: resp.NextToken,
	}
	for _, lg := range resp.LogGroups {
		out.LogGroups = append(out.LogGroups, toLogGroup(lg))
	}
	return out, nil
}

// DeleteLogGroup deletes the log group with the given name.
func (c *CloudWatchLogs) DeleteLogGroup(name string) error {
	if _, err := c.client.DeleteLogGroup(&cloudwatchlogs.DeleteLogGroupInput{
		LogGroupName: aws.String(name),
	}); err != nil {
		return fmt.Errorf("delete log group %s: %w", name, err)
	}
	return nil
}
