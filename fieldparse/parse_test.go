package fieldparse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse[int64]([]byte("1234567890"))
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), v)

	f, err := Parse[float64]([]byte("2.5e3"))
	require.NoError(t, err)
	assert.Equal(t, 2500.0, f)

	b, err := Parse[bool]([]byte("true"))
	require.NoError(t, err)
	assert.True(t, b)

	s, err := Parse[string]([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse[int64]([]byte("12x"))
	require.Error(t, err, "trailing bytes must fail")
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "12x", perr.Fragment)
	assert.Contains(t, perr.Error(), `"12x"`)

	_, err = Parse[int64]([]byte(""))
	require.Error(t, err, "empty input must fail")

	_, err = Parse[int8]([]byte("300"))
	require.Error(t, err)
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.Code.IsOverflow(), "code = %v", perr.Code)

	_, err = Parse[bool]([]byte("maybe"))
	require.Error(t, err)
}

func TestParse_SentinelIsNotAValue(t *testing.T) {
	opts := mustOptions(t, Options{Sentinel: [][]byte{[]byte("NA")}})
	_, err := Parse[int64]([]byte("NA"), opts)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.Code.IsSentinel())
	assert.True(t, perr.Code.Succeeded())
}

func TestTryParse(t *testing.T) {
	v, ok := TryParse[int]([]byte("42"))
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = TryParse[int]([]byte("4 2"))
	assert.False(t, ok)

	u, ok := TryParse[uuid.UUID]([]byte("f47ac10b-58cc-0372-8567-0e02b2c3d479"))
	require.True(t, ok, "TextUnmarshaler fallback")
	assert.Equal(t, "f47ac10b-58cc-0372-8567-0e02b2c3d479", u.String())

	_, ok = TryParse[uuid.UUID]([]byte("not-a-uuid"))
	assert.False(t, ok)
}

func TestXparse_TextUnmarshalerField(t *testing.T) {
	opts := csvOptions(t)
	src := NewBuf([]byte("f47ac10b-58cc-0372-8567-0e02b2c3d479,next"))

	r := Xparse[uuid.UUID](src, 0, src.Len(), opts)
	require.True(t, r.Code.IsOK(), "code = %v", r.Code)
	assert.True(t, r.Code.IsDelimited())
	assert.Equal(t, 37, r.Tlen)
	assert.Equal(t, "f47ac10b-58cc-0372-8567-0e02b2c3d479", r.Val.String())
}
