package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		percent  float64
		resolved bool
	}{
		{"labeled", "GST @ 18%", 18, true},
		{"labeled_decimal", "GST @ 12.5%", 12.5, true},
		{"labeled_no_percent_sign", "IGST @ 28", 28, true},
		{"plain_number", "12", 12, true},
		{"number_with_percent", "5%", 5, true},
		{"none", "None", 0, true},
		{"exempted", "Exempted", 0, true},
		{"exempted_lower", "exempted", 0, true},
		{"empty", "", 0, false},
		{"garbage", "eighteen percent", 0, false},
		{"at_with_garbage", "GST @ lots", 0, false},
		{"negative", "-5", 0, false},
		{"over_hundred", "150", 0, false},
		{"whitespace", "  GST @ 18 % ", 18, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			percent, resolved := ParseRate(tc.raw)
			assert.Equal(t, tc.percent, percent)
			assert.Equal(t, tc.resolved, resolved)
		})
	}
}

func TestRate_UnmarshalJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var r Rate
		require.NoError(t, json.Unmarshal([]byte(`18`), &r))
		assert.Equal(t, 18.0, r.Percent)
		assert.True(t, r.Resolved)
	})

	t.Run("string_label", func(t *testing.T) {
		var r Rate
		require.NoError(t, json.Unmarshal([]byte(`"GST @ 18%"`), &r))
		assert.Equal(t, 18.0, r.Percent)
		assert.Equal(t, "GST @ 18%", r.Label)
		assert.True(t, r.Resolved)
	})

	t.Run("unparsable_string_degrades", func(t *testing.T) {
		var r Rate
		require.NoError(t, json.Unmarshal([]byte(`"n/a"`), &r))
		assert.Equal(t, 0.0, r.Percent)
		assert.False(t, r.Resolved)
	})

	t.Run("out_of_range_number", func(t *testing.T) {
		var r Rate
		require.NoError(t, json.Unmarshal([]byte(`240`), &r))
		assert.Equal(t, 0.0, r.Percent)
		assert.False(t, r.Resolved)
	})

	t.Run("invalid_json", func(t *testing.T) {
		var r Rate
		assert.Error(t, json.Unmarshal([]byte(`{`), &r))
	})
}
