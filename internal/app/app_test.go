package app_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/commons/internal/app"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports/mocks"
	"go.trai.ch/commons/numbers"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	documents *mocks.MockDocumentStore
	records   *mocks.MockConversionStore
	resolver  *mocks.MockInputResolver
	logger    *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		documents: mocks.NewMockDocumentStore(ctrl),
		records:   mocks.NewMockConversionStore(ctrl),
		resolver:  mocks.NewMockInputResolver(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	return app.New(m.loader, m.documents, m.records, m.resolver, m.logger), m
}

func TestApp_LoadConfig(t *testing.T) {
	a, m := newTestApp(t)
	assert.Equal(t, domain.DefaultSettings(), a.Settings())

	settings := domain.DefaultSettings()
	settings.Code.Length = 3
	settings.Code.Alphabet = "X"
	m.loader.EXPECT().Load("commons.yaml").Return(settings, nil)

	require.NoError(t, a.LoadConfig("commons.yaml"))
	assert.Same(t, settings, a.Settings())
	assert.Equal(t, []string{"P-XXX"}, a.GenerateCodes("P-", 0, 0))
}

func TestApp_LoadConfig_Error(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load("bad.yaml").Return(nil, errors.New("boom"))

	require.ErrorContains(t, a.LoadConfig("bad.yaml"), "boom")
	assert.Equal(t, domain.DefaultSettings(), a.Settings(), "settings survive a failed load")
}

func TestApp_GenerateCodes(t *testing.T) {
	a, _ := newTestApp(t)
	a.WithCodeSource(rand.NewPCG(1, 2))

	got := a.GenerateCodes("INV-", 0, 3)
	require.Len(t, got, 3)
	for _, code := range got {
		require.True(t, strings.HasPrefix(code, "INV-"))
		assert.Len(t, code, len("INV-")+7)
	}

	b, _ := newTestApp(t)
	b.WithCodeSource(rand.NewPCG(1, 2))
	assert.Equal(t, got, b.GenerateCodes("INV-", 7, 3), "same seed yields same codes")

	assert.Len(t, a.GenerateCodes("", 12, 1)[0], 12)
}

func TestApp_NewID(t *testing.T) {
	a, _ := newTestApp(t)

	first, err := a.NewID()
	require.NoError(t, err)
	second, err := a.NewID()
	require.NoError(t, err)

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestApp_Text(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, "helloWorldAgain", a.Camel("hello_world again", false))
	assert.Equal(t, "HelloWorld", a.Camel("HELLO_WORLD", true))
	assert.Equal(t, "a b c", a.FreeText("  A \t B\n c "))
	assert.Equal(t, "Hello", a.Capitalize("hello"))
	assert.Equal(t, "hELLO", a.Uncapitalize("HELLO"))
}

func TestApp_Camel_ConfiguredDelimiters(t *testing.T) {
	a, m := newTestApp(t)
	settings := domain.DefaultSettings()
	settings.Text.Delimiters = []rune{'-'}
	m.loader.EXPECT().Load(gomock.Any()).Return(settings, nil)
	require.NoError(t, a.LoadConfig("commons.yaml"))

	assert.Equal(t, "kebabCase", a.Camel("kebab-case", false))
}

func TestApp_FormatText(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		name    string
		pattern string
		args    []string
		want    string
	}{
		{"strings", "Hello {0}, meet {1}", []string{"Ann", "Bob"}, "Hello Ann, meet Bob"},
		{"integer is grouped", "{0} items", []string{"1234567"}, "1,234,567 items"},
		{"float", "total {0}", []string{"1234.5"}, "total 1,234.5"},
		{"missing argument", "{0} and {1}", []string{"x"}, "x and {1}"},
		{"no arguments", "{0}", nil, "{0}"},
		{"no arguments unescapes quotes", "it''s {0}", nil, "it's {0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.FormatText(tt.pattern, tt.args))
		})
	}
}

func TestApp_FormatNumber(t *testing.T) {
	a, m := newTestApp(t)

	got, err := a.FormatNumber("1234567", "")
	require.NoError(t, err)
	assert.Equal(t, "1.234.567", got)

	got, err = a.FormatNumber(" 1234.567 ", "#,##0.00")
	require.NoError(t, err)
	assert.Equal(t, "1.234,57", got)

	_, err = a.FormatNumber("abc", "")
	require.ErrorContains(t, err, domain.ErrInvalidNumber.Error())

	_, err = a.FormatNumber("1", "#.#.#")
	require.ErrorContains(t, err, numbers.ErrInvalidPattern.Error())

	settings := domain.DefaultSettings()
	settings.Number.Symbols = numbers.Symbols{Decimal: '.', Grouping: ','}
	settings.Number.Pattern = "#,##0.0"
	m.loader.EXPECT().Load(gomock.Any()).Return(settings, nil)
	require.NoError(t, a.LoadConfig("commons.yaml"))

	got, err = a.FormatNumber("9876.54", "")
	require.NoError(t, err)
	assert.Equal(t, "9,876.5", got)
}

func TestApp_PageRange(t *testing.T) {
	a, _ := newTestApp(t)

	start, end, err := a.PageRange(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 41, start)
	assert.Equal(t, 60, end)

	_, _, err = a.PageRange(0, 20)
	require.ErrorContains(t, err, domain.ErrInvalidPage.Error())

	_, _, err = a.PageRange(1, 0)
	require.ErrorContains(t, err, domain.ErrInvalidPage.Error())
}
