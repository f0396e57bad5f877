// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cloudslash/logsweeper/internal/pkg/aws/cloudwatchlogs"
	"github.com/cloudslash/logsweeper/internal/pkg/cli/mocks"
	"github.com/cloudslash/logsweeper/internal/pkg/sweep"
)

func TestListOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars listVars

		wantedErr string
	}{
		"accepts empty flags": {
			inVars: listVars{},
		},
		"compiles the exclude pattern": {
			inVars: listVars{exclude: `^/aws/`},
		},
		"fails on a malformed exclude pattern": {
			inVars:    listVars{exclude: `[`},
			wantedErr: "compile --exclude pattern",
		},
		"fails on a negative duration": {
			inVars:    listVars{olderThan: -time.Hour},
			wantedErr: "--older-than must be a positive duration",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &listOpts{listVars: tc.inVars}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.ErrorContains(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			if tc.inVars.exclude != "" {
				require.NotNil(t, opts.excludePattern)
			}
		})
	}
}

func TestListOpts_Execute(t *testing.T) {
	mockError := errors.New("some error")
	mockGroups := []cloudwatchlogs.LogGroup{
		{
			Name:         "/ecs/api",
			CreationTime: 1136214245000,
			StoredBytes:  2048,
		},
		{
			Name:            "/ecs/frontend",
			CreationTime:    1136217845000,
			RetentionInDays: 30,
		},
	}
	testCases := map[string]struct {
		inVars     listVars
		mockLister func(m *mocks.MocklogGroupLister)

		wantedContent []string
		wantedExact   string
		wantedErr     error
	}{
		"writes a table of matching log groups": {
			inVars: listVars{prefix: "/ecs/"},
			mockLister: func(m *mocks.MocklogGroupLister) {
				m.EXPECT().ListMatching(sweep.Criteria{Prefix: "/ecs/"}).Return(mockGroups, nil)
			},
			wantedContent: []string{"Name", "/ecs/api", "/ecs/frontend", "Never expire", "30 days"},
		},
		"writes a note when nothing matches": {
			mockLister: func(m *mocks.MocklogGroupLister) {
				m.EXPECT().ListMatching(sweep.Criteria{}).Return(nil, nil)
			},
			wantedExact: "No log groups found.\n",
		},
		"writes json output": {
			inVars: listVars{shouldOutputJSON: true},
			mockLister: func(m *mocks.MocklogGroupLister) {
				m.EXPECT().ListMatching(sweep.Criteria{}).Return(mockGroups[:1], nil)
			},
			wantedExact: `{"logGroups":[{"name":"/ecs/api","creationTime":1136214245000,"storedBytes":2048}]}` + "\n",
		},
		"propagates the error from the enumeration": {
			mockLister: func(m *mocks.MocklogGroupLister) {
				m.EXPECT().ListMatching(gomock.Any()).Return(nil, mockError)
			},
			wantedErr: mockError,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockLister := mocks.NewMocklogGroupLister(ctrl)
			tc.mockLister(mockLister)
			buf := new(bytes.Buffer)
			opts := &listOpts{
				listVars: tc.inVars,
				lister:   mockLister,
				w:        buf,
			}

			err := opts.Execute()

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			if tc.wantedExact != "" {
				require.Equal(t, tc.wantedExact, buf.String())
			}
			for _, want := range tc.wantedContent {
				require.Contains(t, buf.String(), want)
			}
		})
	}
}
