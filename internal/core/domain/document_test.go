package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/commons/convert"
	"go.trai.ch/commons/internal/core/domain"
)

func TestConversionRecord_UpToDate(t *testing.T) {
	rec := &domain.ConversionRecord{
		Path:        "in.json",
		Fingerprint: "abc",
		Output:      "in.yaml",
		Format:      convert.FormatYAML,
	}

	tests := []struct {
		name        string
		rec         *domain.ConversionRecord
		fingerprint string
		output      string
		format      convert.Format
		want        bool
	}{
		{name: "match", rec: rec, fingerprint: "abc", output: "in.yaml", format: convert.FormatYAML, want: true},
		{name: "content changed", rec: rec, fingerprint: "def", output: "in.yaml", format: convert.FormatYAML},
		{name: "output moved", rec: rec, fingerprint: "abc", output: "out/in.yaml", format: convert.FormatYAML},
		{name: "format changed", rec: rec, fingerprint: "abc", output: "in.yaml", format: convert.FormatJSON},
		{name: "no record", rec: nil, fingerprint: "abc", output: "in.yaml", format: convert.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.UpToDate(tt.fingerprint, tt.output, tt.format))
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.Equal(t, 7, s.Code.Length)
	assert.Equal(t, "#,###", s.Number.Pattern)
	assert.Equal(t, ',', s.Number.Symbols.Decimal)
	assert.Equal(t, []rune{'_'}, s.Text.Delimiters)
}
