// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudwatchlogs

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCloudWatchLogs_ListLogGroups(t *testing.T) {
	mockError := errors.New("some error")
	testCases := map[string]struct {
		prefix     string
		nextToken  string
		mockClient func(m *mocks.Mockapi)

		wantedOut *ListLogGroupsOutput
		wantedErr error
	}{
		"returns a page of log groups without a prefix": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeLogGroups(&cloudwatchlogs.DescribeLogGroupsInput{
					Limit: aws.Int64(50),
				}).Return(&cloudwatchlogs.DescribeLogGroupsOutput{
					LogGroups: []*cloudwatchlogs.LogGroup{
						{
							LogGroupName:    aws.String("/ecs/api"),
							CreationTime:    aws.Int64(1136214245000),
							RetentionInDays: aws.Int64(30),
							StoredBytes:     aws.Int64(2048),
							Arn:             aws.String("arn:aws:logs:us-west-2:1111:log-group:/ecs/api"),
						},
						{
							LogGroupName: aws.String("/ecs/frontend"),
							CreationTime: aws.Int64(1136217845000),
						},
					},
					NextToken: aws.String("token"),
				}, nil)
			},
			wantedOut: &ListLogGroupsOutput{
				LogGroups: []LogGroup{
					{
						Name:            "/ecs/api",
						CreationTime:    1136214245000,
						RetentionInDays: 30,
						StoredBytes:     2048,
						ARN:             "arn:aws:logs:us-west-2:1111:log-group:/ecs/api",
					},
					{
						Name:         "/ecs/frontend",
						CreationTime: 1136217845000,
					},
				},
				NextToken: aws.String("token"),
			},
		},
		"pushes the prefix and continuation token down to the service": {
			prefix:    "/ecs/",
			nextToken: "token",
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeLogGroups(&cloudwatchlogs.DescribeLogGroupsInput{
					Limit:              aws.Int64(50),
					LogGroupNamePrefix: aws.String("/ecs/"),
					NextToken:          aws.String("token"),
				}).Return(&cloudwatchlogs.DescribeLogGroupsOutput{}, nil)
			},
			wantedOut: &ListLogGroupsOutput{},
		},
		"wraps the error from the service": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeLogGroups(gomock.Any()).Return(nil, mockError)
			},
			wantedErr: errors.New("describe log groups: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockClient := mocks.NewMockapi(ctrl)
			tc.mockClient(mockClient)
			cw := CloudWatchLogs{client: mockClient}

			out, err := cw.ListLogGroups(tc.prefix, tc.nextToken)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedOut, out)
		})
	}
}

func TestCloudWatchLogs_DeleteLogGroup(t *testing.T) {
	mockError := errors.New("some error")
	testCases := map[string]struct {
		mockClient func(m *mocks.Mockapi)

		wantedErr error
	}{
		"deletes the log group by name": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().DeleteLogGroup(&cloudwatchlogs.DeleteLogGroupInput{
					LogGroupName: aws.String("/ecs/api"),
				}).Return(&cloudwatchlogs.DeleteLogGroupOutput{}, nil)
			},
		},
		"wraps the error from the service": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().DeleteLogGroup(gomock.Any()).Return(nil, mockError)
			},
			wantedErr: errors.New("delete log group /ecs/api: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockClient := mocks.NewMockapi(ctrl)
			tc.mockClient(mockClient)
			cw := CloudWatchLogs{client: mockClient}

			err := cw.DeleteLogGroup("/ecs/api")

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLogGroup_Retention(t *testing.T) {
	require.Equal(t, "Never expire", LogGroup{}.Retention())
	require.Equal(t, "14 days", LogGroup{RetentionInDays: 14}.Retention())
}

func TestLogGroup_JSONString(t *testing.T) {
	lg := LogGroup{
		Name:         "/ecs/api",
		CreationTime: 1136214245000,
		StoredBytes:  2048,
	}
	s, err := lg.JSONString()
	require.NoError(t, err)
	require.Equal(t, `{"name":"/ecs/api","creationTime":1136214245000,"storedBytes":2048}`+"\n", s)
}
