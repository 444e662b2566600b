package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDie(t *testing.T) {
	testCases := []struct {
		name    string
		sides   int
		want    Die
		wantErr bool
	}{
		{name: "d4", sides: 4, want: D4},
		{name: "d6", sides: 6, want: D6},
		{name: "d8", sides: 8, want: D8},
		{name: "d10", sides: 10, want: D10},
		{name: "d12", sides: 12, want: D12},
		{name: "d20", sides: 20, want: D20},
		{name: "zero", sides: 0, wantErr: true},
		{name: "negative", sides: -6, wantErr: true},
		{name: "d2 is not in the chain", sides: 2, wantErr: true},
		{name: "d100 is not in the chain", sides: 100, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDie(tc.sides)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDie)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.sides, got.Sides())
		})
	}
}

func TestChainIsAscending(t *testing.T) {
	require.Len(t, Chain, 6)
	for i := 1; i < len(Chain); i++ {
		assert.Less(t, Chain[i-1], Chain[i])
	}
}

func TestDieIndex(t *testing.T) {
	for i, d := range Chain {
		assert.Equal(t, i, d.Index(), d.String())
		assert.True(t, d.Valid())
	}
	assert.Equal(t, -1, Die(7).Index())
	assert.False(t, Die(0).Valid())
}

func TestDieNext(t *testing.T) {
	testCases := []struct {
		die    Die
		want   Die
		wantOK bool
	}{
		{die: D4, want: D6, wantOK: true},
		{die: D6, want: D8, wantOK: true},
		{die: D8, want: D10, wantOK: true},
		{die: D10, want: D12, wantOK: true},
		{die: D12, want: D20, wantOK: true},
		{die: D20, wantOK: false},
		{die: Die(3), wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.die.String(), func(t *testing.T) {
			got, ok := tc.die.Next()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDieString(t *testing.T) {
	assert.Equal(t, "d4", D4.String())
	assert.Equal(t, "d20", D20.String())
}
