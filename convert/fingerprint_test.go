package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/commons/convert"
)

func TestFingerprint_Stable(t *testing.T) {
	a, err := convert.Fingerprint(map[string]any{"a": 1, "b": []string{"x"}})
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := convert.Fingerprint(map[string]any{"b": []string{"x"}, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := convert.Fingerprint(map[string]any{"a": 2, "b": []string{"x"}})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestFingerprintBytes_FormatIndependent(t *testing.T) {
	fromJSON, err := convert.FingerprintBytes([]byte(`{"name":"x","items":[1,2]}`), convert.FormatJSON)
	require.NoError(t, err)

	reordered, err := convert.FingerprintBytes([]byte(`{ "items": [1, 2], "name": "x" }`), convert.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, reordered)

	fromYAML, err := convert.FingerprintBytes([]byte("items:\n  - 1\n  - 2\nname: x\n"), convert.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)

	sv, err := convert.Fingerprint(struct {
		Name  string `json:"name"`
		Items []int  `json:"items"`
	}{Name: "x", Items: []int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, fromJSON, sv)
}

func TestFingerprintBytes_Numbers(t *testing.T) {
	fingerprint := func(doc string, format convert.Format) string {
		t.Helper()
		sum, err := convert.FingerprintBytes([]byte(doc), format)
		require.NoError(t, err)
		return sum
	}

	whole := fingerprint(`{"a":1}`, convert.FormatJSON)
	assert.Equal(t, whole, fingerprint(`{"a":1.0}`, convert.FormatJSON))
	assert.Equal(t, whole, fingerprint(`{"a":1e0}`, convert.FormatJSON))
	assert.Equal(t, whole, fingerprint("a: 1.0\n", convert.FormatYAML))
	assert.Equal(t, whole, fingerprint("a: 1\n", convert.FormatYAML))

	fraction := fingerprint(`{"a":[1.5,-0.25]}`, convert.FormatJSON)
	assert.Equal(t, fraction, fingerprint("a:\n  - 1.5\n  - -0.25\n", convert.FormatYAML))
	assert.NotEqual(t, whole, fraction)

	sv, err := convert.Fingerprint(map[string]float64{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, whole, sv)
}

func TestFingerprintBytes_Errors(t *testing.T) {
	_, err := convert.FingerprintBytes([]byte(`{`), convert.FormatJSON)
	require.Error(t, err)

	_, err = convert.FingerprintBytes([]byte(`{}`), convert.Format("ini"))
	require.Error(t, err)
	assert.ErrorContains(t, err, convert.ErrUnsupportedFormat.Error())
}
