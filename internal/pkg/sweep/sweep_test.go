// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
	"github.com/cloudslash/logsweeper/internal/pkg/sweep/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2022, 8, 1, 12, 0, 0, 0, time.UTC)

func group(name string, age time.Duration) cloudwatchlogs.LogGroup {
	return cloudwatchlogs.LogGroup{
		Name:         name,
		CreationTime: testTime.Add(-age).UnixMilli(),
	}
}

func TestSweeper_ListMatching(t *testing.T) {
	mockError := errors.New("some error")
	testCases := map[string]struct {
		criteria   Criteria
		mockClient func(m *mocks.Mockapi)

		wantedNames []string
		wantedErr   error
	}{
		"keeps only log groups older than the cutoff across pages, in page order": {
			criteria: Criteria{
				CreatedBefore: testTime.Add(-10 * time.Second),
			},
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/young", 500*time.Millisecond),
						group("/ecs/oldest", 20*time.Second),
					},
					NextToken: aws.String("t1"),
				}, nil)
				m.EXPECT().ListLogGroups("", "t1").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/older", 15*time.Second),
					},
					NextToken: aws.String("t2"),
				}, nil)
				m.EXPECT().ListLogGroups("", "t2").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/recent", 2*time.Second),
					},
				}, nil)
			},
			wantedNames: []string{"/ecs/oldest", "/ecs/older"},
		},
		"defaults the cutoff to the time of the call": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/past", time.Hour),
						group("/ecs/future", -time.Hour),
					},
				}, nil)
			},
			wantedNames: []string{"/ecs/past"},
		},
		"drops log groups whose names match the exclude pattern": {
			criteria: Criteria{
				Exclude: regexp.MustCompile(`^/aws/`),
			},
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/aws/lambda/fn", time.Hour),
						group("/ecs/api", time.Hour),
						group("/aws/rds/db", time.Hour),
					},
				}, nil)
			},
			wantedNames: []string{"/ecs/api"},
		},
		"pushes the prefix down to the service and keeps it as a local backstop": {
			criteria: Criteria{
				Prefix: "/ecs/",
			},
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("/ecs/", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/api", time.Hour),
						// Not expected from the service, but the local filter still applies.
						group("/aws/lambda/fn", time.Hour),
					},
				}, nil)
			},
			wantedNames: []string{"/ecs/api"},
		},
		"discards partial results when a page fails": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/api", time.Hour),
					},
					NextToken: aws.String("t1"),
				}, nil)
				m.EXPECT().ListLogGroups("", "t1").Return(nil, mockError)
			},
			wantedErr: mockError,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockClient := mocks.NewMockapi(ctrl)
			tc.mockClient(mockClient)
			s := &Sweeper{
				client:      mockClient,
				concurrency: defaultConcurrency,
				now:         func() time.Time { return testTime },
			}

			groups, err := s.ListMatching(tc.criteria)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				require.Nil(t, groups)
				return
			}
			require.NoError(t, err)
			var names []string
			for _, lg := range groups {
				names = append(names, lg.Name)
			}
			require.Equal(t, tc.wantedNames, names)
		})
	}
}

func TestSweeper_ListMatching_ExcludeIsASubset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	page := &cloudwatchlogs.ListLogGroupsOutput{
		LogGroups: []cloudwatchlogs.LogGroup{
			group("/aws/lambda/fn", time.Hour),
			group("/ecs/api", time.Hour),
		},
	}
	mockClient := mocks.NewMockapi(ctrl)
	mockClient.EXPECT().ListLogGroups("", "").Return(page, nil).Times(2)
	s := &Sweeper{
		client:      mockClient,
		concurrency: defaultConcurrency,
		now:         func() time.Time { return testTime },
	}

	unfiltered, err := s.ListMatching(Criteria{})
	require.NoError(t, err)
	filtered, err := s.ListMatching(Criteria{Exclude: regexp.MustCompile(`^/aws/`)})
	require.NoError(t, err)

	require.Subset(t, unfiltered, filtered)
	for _, lg := range filtered {
		require.NotRegexp(t, `^/aws/`, lg.Name)
	}
}

func TestSweeper_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockClient := mocks.NewMockapi(ctrl)
	mockClient.EXPECT().ListLogGroups("", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
		LogGroups: []cloudwatchlogs.LogGroup{
			group("/ecs/api", time.Hour),
			group("/ecs/frontend", time.Minute),
		},
	}, nil)
	s := &Sweeper{
		client:      mockClient,
		concurrency: defaultConcurrency,
		now:         func() time.Time { return testTime },
	}

	groups, err := s.ListAll()

	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestSweeper_DeleteMatching(t *testing.T) {
	mockError := errors.New("some error")
	testCases := map[string]struct {
		mockClient func(m *mocks.Mockapi)

		wantedErr error
	}{
		"deletes exactly the log groups the enumeration returned": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("/ecs/", "").Return(&cloudwatchlogs.ListLogGroupsOutput{
					LogGroups: []cloudwatchlogs.LogGroup{
						group("/ecs/api", time.Hour),
						group("/ecs/frontend", time.Hour),
					},
				}, nil)
				m.EXPECT().DeleteLogGroup("/ecs/api").Return(nil)
				m.EXPECT().DeleteLogGroup("/ecs/frontend").Return(nil)
			},
		},
		"does not attempt any deletion when the enumeration fails": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("/ecs/", "").Return(nil, mockError)
				m.EXPECT().DeleteLogGroup(gomock.Any()).Times(0)
			},
			wantedErr: mockError,
		},
		"succeeds without deleting anything when nothing matches": {
			mockClient: func(m *mocks.Mockapi) {
				m.EXPECT().ListLogGroups("/ecs/", "").Return(&cloudwatchlogs.ListLogGroupsOutput{}, nil)
				m.EXPECT().DeleteLogGroup(gomock.Any()).Times(0)
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockClient := mocks.NewMockapi(ctrl)
			tc.mockClient(mockClient)
			s := &Sweeper{
				client:      mockClient,
				concurrency: defaultConcurrency,
				now:         func() time.Time { return testTime },
			}

			err := s.DeleteMatching(Criteria{Prefix: "/ecs/"})

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
