// Package config provides the configuration loader for commons.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/commons/numbers"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the configuration schema version understood by this build.
const CurrentVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the configuration from path. A missing file yields the
// default settings.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Commonsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	switch file.Version {
	case CurrentVersion:
	case "":
		l.logger.Warn(fmt.Sprintf("%s does not declare a version, assuming %q", path, CurrentVersion))
	default:
		err := zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
		return nil, zerr.With(err, "path", path)
	}

	settings, err := file.toSettings()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

// toSettings overlays the configured values on the defaults.
func (f *Commonsfile) toSettings() (*domain.Settings, error) {
	s := domain.DefaultSettings()

	switch {
	case f.Code.Length < 0:
		return nil, zerr.With(domain.ErrInvalidConfig, "field", "code.length")
	case f.Code.Length > 0:
		s.Code.Length = f.Code.Length
	}
	if f.Code.Alphabet != "" {
		s.Code.Alphabet = f.Code.Alphabet
	}

	if f.Number.Pattern != "" {
		if _, err := numbers.NewFormatter(f.Number.Pattern); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "field", "number.pattern")
		}
		s.Number.Pattern = f.Number.Pattern
	}

	var err error
	if s.Number.Symbols.Decimal, err = singleRune(f.Number.DecimalSeparator, s.Number.Symbols.Decimal, "number.decimalSeparator"); err != nil {
		return nil, err
	}
	if s.Number.Symbols.Grouping, err = singleRune(f.Number.GroupingSeparator, s.Number.Symbols.Grouping, "number.groupingSeparator"); err != nil {
		return nil, err
	}
	if s.Number.Symbols.Decimal == s.Number.Symbols.Grouping {
		return nil, zerr.With(domain.ErrInvalidConfig, "field", "number.groupingSeparator")
	}

	if f.Text.Delimiters != "" {
		s.Text.Delimiters = []rune(f.Text.Delimiters)
	}

	return s, nil
}

func singleRune(value string, fallback rune, field string) (rune, error) {
	if value == "" {
		return fallback, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, zerr.With(domain.ErrInvalidConfig, "field", field)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
