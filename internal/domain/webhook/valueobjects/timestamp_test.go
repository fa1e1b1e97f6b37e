package valueobjects

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-07-28T10:20:17.681338Z", time.Date(2023, 7, 28, 10, 20, 17, 681338000, time.UTC)},
		{"2023-07-28T10:20:17Z", time.Date(2023, 7, 28, 10, 20, 17, 0, time.UTC)},
		{"2023-07-28T10:20:17.681338", time.Date(2023, 7, 28, 10, 20, 17, 681338000, time.UTC)},
		{"2023-07-28T10:20:17", time.Date(2023, 7, 28, 10, 20, 17, 0, time.UTC)},
		{"2023-07-28 10:20:17.5", time.Date(2023, 7, 28, 10, 20, 17, 500000000, time.UTC)},
		{"2023-07-28T13:20:17+03:00", time.Date(2023, 7, 28, 10, 20, 17, 0, time.UTC)},
		{"2023-07-28T13:20:17+0300", time.Date(2023, 7, 28, 10, 20, 17, 0, time.UTC)},
		{"2023-07-28T10:20", time.Date(2023, 7, 28, 10, 20, 0, 0, time.UTC)},
		{"2023-07-28", time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"yesterday", "28/07/2023", "2023-13-01T00:00:00"} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, input)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	var v struct {
		At    Timestamp  `json:"at"`
		Maybe *Timestamp `json:"maybe"`
		Empty Timestamp  `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2023-07-28T10:20:17.681338","maybe":null,"empty":""}`), &v))

	assert.Equal(t, 2023, v.At.Year())
	assert.Nil(t, v.Maybe)
	assert.True(t, v.Empty.IsZero())

	out, err := json.Marshal(v.At)
	require.NoError(t, err)
	assert.Equal(t, `"2023-07-28T10:20:17.681338Z"`, string(out))

	out, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"at":12345}`), &v))
}
