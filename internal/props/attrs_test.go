// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttrs_Scalars(t *testing.T) {
	bag, err := ParseAttrs(`segments="Settings, Account" mode='block' icon={false} size={"lg"} n={0} title={null} x={undefined} bold`)
	require.NoError(t, err)

	assert.Equal(t, KindString, bag["segments"].Kind())
	assert.Equal(t, "Settings, Account", bag["segments"].Raw())
	assert.Equal(t, "block", bag["mode"].Raw())
	assert.Equal(t, KindBool, bag["icon"].Kind())
	assert.False(t, bag["icon"].AsBool(true))
	assert.Equal(t, "lg", bag["size"].Raw())
	assert.Equal(t, KindNumber, bag["n"].Kind())
	assert.Equal(t, KindNull, bag["title"].Kind())
	assert.Equal(t, KindAbsent, bag["x"].Kind())
	assert.True(t, bag["bold"].AsBool(false))
}

func TestParseAttrs_Arrays(t *testing.T) {
	bag, err := ParseAttrs(`combo={["Ctrl+K", "Ctrl+S",]} segments={[ /* root */ "Settings", "Security" ]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ctrl+K", "Ctrl+S"}, bag["combo"].Items())
	assert.Equal(t, []string{"Settings", "Security"}, bag["segments"].Items())
}

func TestParseAttrs_SingleQuotedArrays(t *testing.T) {
	bag, err := ParseAttrs(`segments={['Settings','Account']} combo={[ 'Ctrl+K', /* then */ "Ctrl+S", ]} title={['it\'s "x"', ` + "`tick`" + `]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Settings", "Account"}, bag["segments"].Items())
	assert.Equal(t, []string{"Ctrl+K", "Ctrl+S"}, bag["combo"].Items())
	assert.Equal(t, []string{`it's "x"`, "tick"}, bag["title"].Items())
}

func TestDoubleQuoted(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`['a', 'b']`, `["a", "b"]`},
		{`["it's", 'x']`, `["it's", "x"]`},
		{`[/* 'c' */ 'd']`, `[/* 'c' */ "d"]`},
		{`['a\nb']`, `["a\nb"]`},
		{`['open`, `['open`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, doubleQuoted(tt.in))
		})
	}
}

func TestParseAttrs_BracesInsideStrings(t *testing.T) {
	bag, err := ParseAttrs(`title={"a } b"} joiner="/"`)
	require.NoError(t, err)
	assert.Equal(t, "a } b", bag["title"].Raw())
	assert.Equal(t, "/", bag["joiner"].Raw())
}

func TestParseAttrs_Empty(t *testing.T) {
	bag, err := ParseAttrs("   ")
	require.NoError(t, err)
	assert.Empty(t, bag)
}

func TestParseAttrs_Malformed(t *testing.T) {
	inputs := []string{
		`title="unterminated`,
		`combo={["a"`,
		`mode=block`,
		`{...rest}`,
		`x={someCall()}`,
		`segments={[1,}`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAttrs(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedAttrs))
		})
	}
}
