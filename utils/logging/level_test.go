// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignedString(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Debug, Verbo}
	for _, l := range levels {
		as := l.AlignedString()
		require.Len(t, as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(t, s[:alignedStringLen], as)
		default:
			require.Equal(t, s, as[:len(s)])
			require.Equal(t, as[len(s):], strings.Repeat(" ", alignedStringLen-len(s)))
		}
	}
}

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, l := range []Level{Off, Fatal, Error, Warn, Info, Debug, Verbo} {
		parsed, err := ToLevel(strings.ToLower(l.String()))
		require.NoError(err)
		require.Equal(l, parsed)
	}

	_, err := ToLevel("loud")
	require.ErrorContains(err, "unknown log level")
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Warn)
	require.NoError(err)
	require.Equal(`"WARN"`, string(b))

	var l Level
	require.NoError(json.Unmarshal([]byte(`"verbo"`), &l))
	require.Equal(Verbo, l)

	require.Error(json.Unmarshal([]byte(`"nope"`), &l))
}

func TestLevelsAreOrdered(t *testing.T) {
	require := require.New(t)

	levels := []Level{Verbo, Debug, Info, Warn, Error, Fatal, Off}
	for i := 1; i < len(levels); i++ {
		require.True(levels[i-1] < levels[i], "%s should be below %s", levels[i-1], levels[i])
	}
}
