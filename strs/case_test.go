package strs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/commons/strs"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", strs.Capitalize(""))
	assert.Equal(t, "Hello", strs.Capitalize("hello"))
	assert.Equal(t, "Hello", strs.Capitalize("Hello"))
	assert.Equal(t, "Éclair", strs.Capitalize("éclair"))
	assert.Equal(t, "ǅemal", strs.Capitalize("ǆemal"), "title case differs from upper case")
}

func TestUncapitalize(t *testing.T) {
	assert.Equal(t, "", strs.Uncapitalize(""))
	assert.Equal(t, "hELLO", strs.Uncapitalize("HELLO"))
	assert.Equal(t, "hello", strs.Uncapitalize("hello"))
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name            string
		in              string
		capitalizeFirst bool
		delimiters      []rune
		want            string
	}{
		{name: "empty", in: "", want: ""},
		{name: "space delimited", in: "hello world", want: "helloWorld"},
		{name: "capitalize first", in: "hello world", capitalizeFirst: true, want: "HelloWorld"},
		{name: "upper input", in: "HELLO_WORLD", delimiters: []rune{'_'}, want: "helloWorld"},
		{name: "leading delimiters", in: "__to_camel_case", delimiters: []rune{'_'}, want: "toCamelCase"},
		{name: "leading delimiters capitalized", in: "  to camel", capitalizeFirst: true, want: "ToCamel"},
		{name: "repeated delimiters", in: "a--b..c", delimiters: []rune{'-', '.'}, want: "aBC"},
		{name: "only delimiters", in: "___", delimiters: []rune{'_'}, want: ""},
		{name: "unicode", in: "ÉTÉ_ÉCOLE", delimiters: []rune{'_'}, want: "étéÉcole"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strs.ToCamelCase(tt.in, tt.capitalizeFirst, tt.delimiters...))
		})
	}
}

func TestToCamelCaseUnderscore(t *testing.T) {
	assert.Equal(t, "createdAt", strs.ToCamelCaseUnderscore("CREATED_AT"))
	assert.Equal(t, "userId", strs.ToCamelCaseUnderscore("user_id"))
}
