package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValueNeverNull(t *testing.T) {
	v, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray{"a.jpg", "b.jpg"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a.jpg","b.jpg"]`, v)
}

func TestStringArrayScanNormalizesLegacyRows(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want StringArray
	}{
		{"json array", `["a.jpg","b.jpg"]`, StringArray{"a.jpg", "b.jpg"}},
		{"json array bytes", []byte(`["a.jpg"]`), StringArray{"a.jpg"}},
		{"bare json string", `"cover.jpg"`, StringArray{"cover.jpg"}},
		{"empty json string", `""`, StringArray{}},
		{"empty text", "", StringArray{}},
		{"null text", "null", StringArray{}},
		{"sql null", nil, StringArray{}},
		{"unparseable text", "cover.jpg", StringArray{"cover.jpg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a StringArray
			require.NoError(t, a.Scan(tc.in))
			assert.Equal(t, tc.want, a)
		})
	}
}

func TestStringArrayScanRejectsUnsupportedType(t *testing.T) {
	var a StringArray
	assert.Error(t, a.Scan(42))
}
