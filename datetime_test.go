// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateTimeFromString(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		opts         []DateTimeOption
		expectedKind DateTimeKind
		expectedTime time.Time
		expectErr    bool
	}{
		{
			name:         "time of day only",
			input:        "13:05:07",
			expectedKind: TimeOnly,
			expectedTime: time.Date(0, time.January, 1, 13, 5, 7, 0, time.UTC),
		},
		{
			name:         "time of day with fractional seconds",
			input:        "13:05:07.456789",
			expectedKind: TimeOnly,
			expectedTime: time.Date(0, time.January, 1, 13, 5, 7, 456789000, time.UTC),
		},
		{
			name:         "date only",
			input:        "2024-03-01",
			expectedKind: DateOnly,
			expectedTime: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "full timestamp",
			input:        "2024-03-01 13:05:07",
			expectedKind: FullDateTime,
			expectedTime: time.Date(2024, time.March, 1, 13, 5, 7, 0, time.UTC),
		},
		{
			name:         "full timestamp with fractional seconds",
			input:        "2024-03-01 13:05:07.25",
			expectedKind: FullDateTime,
			expectedTime: time.Date(2024, time.March, 1, 13, 5, 7, 250000000, time.UTC),
		},
		{
			name:         "midnight timestamp collapses to a date",
			input:        "2024-03-01 00:00:00",
			expectedKind: DateOnly,
			expectedTime: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "explicit layout overrides inference",
			input:        "01/03/2024",
			opts:         []DateTimeOption{DateTimeLayout("02/01/2006")},
			expectedKind: DateOnly,
			expectedTime: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "explicit layout disables the candidate layouts",
			input:     "2024-03-01",
			opts:      []DateTimeOption{DateTimeLayout("02/01/2006")},
			expectErr: true,
		},
		{
			name:      "errors when no layout matches",
			input:     "not a timestamp",
			expectErr: true,
		},
		{
			name:      "errors on a partial time",
			input:     "13:05",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := DateTimeFromString(ReaderOf(tc.input), tc.opts...)
			val, err := Read(context.Background(), r)
			if tc.expectErr {
				var cerr ConversionError
				require.ErrorAs(t, err, &cerr)
				require.Equal(t, tc.input, cerr.Raw)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedKind, val.Kind)
			require.True(t, tc.expectedTime.Equal(val.Time), "expected %s, got %s", tc.expectedTime, val.Time)
		})
	}
}

func TestDateTime_String(t *testing.T) {
	testCases := []struct {
		name     string
		value    DateTime
		expected string
	}{
		{
			name: "date only renders just the date",
			value: DateTime{
				Kind: DateOnly,
				Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			},
			expected: "2024-03-01",
		},
		{
			name: "time only renders just the time of day",
			value: DateTime{
				Kind: TimeOnly,
				Time: time.Date(0, time.January, 1, 13, 5, 7, 0, time.UTC),
			},
			expected: "13:05:07",
		},
		{
			name: "full timestamp renders both",
			value: DateTime{
				Kind: FullDateTime,
				Time: time.Date(2024, time.March, 1, 13, 5, 7, 0, time.UTC),
			},
			expected: "2024-03-01 13:05:07",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestCandidateLayouts(t *testing.T) {
	t.Run("time layouts are tried before date layouts before combinations", func(t *testing.T) {
		layouts := candidateLayouts()
		require.Equal(t, []string{
			"15:04:05.999999",
			"15:04:05",
			"2006-01-02",
			"2006-01-02 15:04:05.999999",
			"2006-01-02 15:04:05",
		}, layouts)
	})
}
