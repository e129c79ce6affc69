// Package app implements the application layer for commons.
package app

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.trai.ch/commons/codes"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/commons/numbers"
	"go.trai.ch/commons/paging"
	"go.trai.ch/commons/strs"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	documents    ports.DocumentStore
	records      ports.ConversionStore
	resolver     ports.InputResolver
	logger       ports.Logger

	settings   *domain.Settings
	codeSource rand.Source
	generator  *codes.Generator
	now        func() time.Time
}

// New creates a new App instance using the default settings.
func New(
	loader ports.ConfigLoader,
	documents ports.DocumentStore,
	records ports.ConversionStore,
	resolver ports.InputResolver,
	logger ports.Logger,
) *App {
	a := &App{
		configLoader: loader,
		documents:    documents,
		records:      records,
		resolver:     resolver,
		logger:       logger,
		now:          time.Now,
	}
	a.apply(domain.DefaultSettings())
	return a
}

// WithClock sets the clock used to timestamp conversion records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithCodeSource makes code generation draw from src.
func (a *App) WithCodeSource(src rand.Source) *App {
	a.codeSource = src
	a.apply(a.settings)
	return a
}

// LoadConfig reads the configuration file at path and applies it.
func (a *App) LoadConfig(path string) error {
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return err
	}
	a.apply(settings)
	return nil
}

// Settings returns the settings in effect.
func (a *App) Settings() *domain.Settings {
	return a.settings
}

func (a *App) apply(s *domain.Settings) {
	a.settings = s
	opts := []codes.Option{codes.WithAlphabet(s.Code.Alphabet)}
	if a.codeSource != nil {
		opts = append(opts, codes.WithSource(a.codeSource))
	}
	a.generator = codes.NewGenerator(opts...)
}

// GenerateCodes returns count random codes starting with prefix.
// A length below one uses the configured length, a count below one yields one code.
func (a *App) GenerateCodes(prefix string, length, count int) []string {
	if length < 1 {
		length = a.settings.Code.Length
	}
	count = max(count, 1)

	out := make([]string, count)
	for i := range out {
		out[i] = a.generator.Generate(prefix, length)
	}
	return out
}

// NewID returns a new time-ordered unique identifier.
func (a *App) NewID() (string, error) {
	return codes.NewID()
}

// Camel converts s to camel case using the configured delimiters.
func (a *App) Camel(s string, capitalizeFirst bool) string {
	return strs.ToCamelCase(s, capitalizeFirst, a.settings.Text.Delimiters...)
}

// FreeText normalizes s to lower-case words separated by single spaces.
func (a *App) FreeText(s string) string {
	return strs.FreeText(s)
}

// Capitalize title-cases the first character of s.
func (a *App) Capitalize(s string) string {
	return strs.Capitalize(s)
}

// Uncapitalize lower-cases the first character of s.
func (a *App) Uncapitalize(s string) string {
	return strs.Uncapitalize(s)
}

// FormatText substitutes args into the {n} placeholders of pattern.
// Arguments that parse as numbers are formatted as numbers.
func (a *App) FormatText(pattern string, args []string) string {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = parseArg(arg)
	}
	return strs.Format(pattern, values...)
}

func parseArg(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if strings.ContainsRune(arg, '.') {
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			return f
		}
	}
	return arg
}

// FormatNumber formats a decimal value with pattern, or with the configured
// pattern when pattern is empty.
func (a *App) FormatNumber(value, pattern string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidNumber.Error()), "value", value)
	}

	if pattern == "" {
		pattern = a.settings.Number.Pattern
	}
	f, err := numbers.NewFormatter(pattern, numbers.WithSymbols(a.settings.Number.Symbols))
	if err != nil {
		return "", err
	}
	return f.Format(d), nil
}

// PageRange returns the 1-based first and last item index of a page.
func (a *App) PageRange(page, size int) (start, end int, err error) {
	if page < 1 || size < 1 {
		err = zerr.With(domain.ErrInvalidPage, "page", page)
		return 0, 0, zerr.With(err, "size", size)
	}
	return paging.StartIndex(page, size), paging.EndIndex(page, size), nil
}
