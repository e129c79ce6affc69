package strs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/commons/strs"
)

func TestLength(t *testing.T) {
	assert.Equal(t, 0, strs.Length(""))
	assert.Equal(t, 5, strs.Length("hello"))
	assert.Equal(t, 4, strs.Length("café"))
}

func TestBlankAndEmpty(t *testing.T) {
	tests := []struct {
		in    string
		empty bool
		blank bool
	}{
		{in: "", empty: true, blank: true},
		{in: "   ", empty: false, blank: true},
		{in: "\t\n", empty: false, blank: true},
		{in: " a ", empty: false, blank: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.empty, strs.IsEmpty(tt.in), "IsEmpty(%q)", tt.in)
		assert.Equal(t, tt.blank, strs.IsBlank(tt.in), "IsBlank(%q)", tt.in)
		assert.Equal(t, !tt.blank, strs.IsNotBlank(tt.in), "IsNotBlank(%q)", tt.in)
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "a b", strs.Trim("  a b \n"))
	assert.Equal(t, "", strs.Trim(""))
}

func TestWhiteSpaceIsUnicode(t *testing.T) {
	assert.True(t, strs.IsBlank("\u00a0\u2003"))
	assert.Equal(t, "a", strs.Trim("\u00a0a\u3000"))
	assert.Equal(t, "\x00a\x1f", strs.Trim(" \x00a\x1f "), "control characters are kept")
	assert.Equal(t, "a b", strs.FreeText("A\u00a0\u2003B"))
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "a-b-c", strs.Replace("a b c", " ", "-"))
	assert.Equal(t, "   ", strs.Replace("   ", " ", "-"), "blank input is left alone")
	assert.Equal(t, "", strs.Replace("", "", "x"))
}

func TestDefaults(t *testing.T) {
	fallback := func() string { return "fallback" }

	assert.Equal(t, "fallback", strs.DefaultIfEmpty("", fallback))
	assert.Equal(t, " ", strs.DefaultIfEmpty(" ", fallback))
	assert.Equal(t, "fallback", strs.DefaultIfBlank(" ", fallback))
	assert.Equal(t, "v", strs.DefaultIfBlank("v", fallback))
	assert.Equal(t, "", strs.DefaultIfBlank(" ", nil))
}

func TestFreeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  \t ", want: ""},
		{in: "  Hello   World ", want: "hello world"},
		{in: "Multi\n\nLine\tTEXT", want: "multi line text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strs.FreeText(tt.in), "FreeText(%q)", tt.in)
	}
}

func TestFromBytes(t *testing.T) {
	assert.Equal(t, "", strs.FromBytes(nil))
	assert.Equal(t, "abc", strs.FromBytes([]byte("abc")))
	assert.Equal(t, "é", strs.FromBytes([]byte{0xE9}))
}

func TestFromBytesRange(t *testing.T) {
	buf := []byte("hello world")

	got, err := strs.FromBytesRange(buf, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	got, err = strs.FromBytesRange(buf, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	for _, window := range [][2]int{{-1, 2}, {0, 12}, {10, 2}, {2, -1}} {
		_, err := strs.FromBytesRange(buf, window[0], window[1])
		require.Error(t, err, "window %v", window)
		assert.ErrorContains(t, err, strs.ErrOutOfRange.Error())
	}
}
