package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	c := NewColor(0x58, 0x65, 0xf2)
	assert.Equal(t, Color(0x5865f2), c)

	r, g, b := c.RGB()
	assert.Equal(t, uint8(0x58), r)
	assert.Equal(t, uint8(0x65), g)
	assert.Equal(t, uint8(0xf2), b)

	assert.Equal(t, "#5865f2", c.String())
}

func TestTimestamp_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"micros with offset", `"2017-07-11T17:27:07.299000+00:00"`},
		{"zulu", `"2021-08-10T08:59:01Z"`},
		{"millis", `"2021-08-10T08:59:01.123Z"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(test.input), &ts))
			assert.False(t, ts.IsZero())

			// value round trip: re-decoding the re-encoded form yields the
			// same instant
			out, err := json.Marshal(ts)
			require.NoError(t, err)
			var again Timestamp
			require.NoError(t, json.Unmarshal(out, &again))
			assert.True(t, ts.Equal(again.Time))
		})
	}

	t.Run("not a timestamp", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})

	t.Run("not a string", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
	})
}
