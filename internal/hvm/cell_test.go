package hvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLnkRoundTrip(t *testing.T) {
	assert.Equal(t, DP0, GetTag(Dp0(7, 20)))
	assert.Equal(t, DP1, GetTag(Dp1(7, 20)))
	assert.Equal(t, uint32(7), GetExt(Dp0(7, 20)))
	assert.Equal(t, uint64(20), Loc(Dp0(7, 20), 0))
	assert.Equal(t, uint64(21), Loc(Dp0(7, 20), 1))
}

func TestNumMasksTo60Bits(t *testing.T) {
	huge := uint64(1) << 62
	n := Num(huge)
	assert.Equal(t, NUM, GetTag(n))
	assert.Equal(t, huge&numMask, GetNum(n))
	assert.NotEqual(t, huge, GetNum(n), "62-bit input must not survive the 60-bit mask intact")
}

func TestExtMaskDoesNotBleedIntoTag(t *testing.T) {
	c := Sup(0xFFFFFFFF, 100)
	assert.Equal(t, SUP, GetTag(c))
	assert.Equal(t, uint32(extMask), GetExt(c), "ext must be truncated to 24 bits, not overflow into tag")
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", ADD.String())
	assert.Equal(t, "<=", LTE.String())
	assert.Equal(t, "?", Op(0xFF).String())
}
