package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Born Date `json:"born"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"born":"2010-03-14"}`), &payload))
	assert.Equal(t, NewDate(2010, time.March, 14), payload.Born)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"born":"2010-03-14"}`, string(out))
}

func TestDateJSONRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"14/03/2010"`), &d))
}

func TestDateScan(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
	}{
		{"time", time.Date(2010, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{"string", "2010-03-14"},
		{"datetime string", "2010-03-14 00:00:00+00:00"},
		{"bytes", []byte("2010-03-14")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.src))
			assert.Equal(t, "2010-03-14", d.String())
		})
	}
}

func TestDateValueZeroIsNull(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
