package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid day", input: "2024-03-01", want: NewDate(2024, time.March, 1)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "time of day is rejected", input: "2024-03-01T10:00:00Z", wantErr: true},
		{name: "invalid day", input: "2023-02-29", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-01", DateOf(instant).String())
	assert.Equal(t, "2024-03-02", DateOf(instant.In(tokyo)).String())
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-01-31", d.AddDays(-28).String())
	assert.Equal(t, "2024-05-28", d.AddMonths(3).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, d.Between(d, d))
	assert.False(t, d.Between(d.AddDays(1), d.AddDays(3)))
	assert.True(t, d.SameMonth(NewDate(2024, time.February, 1)))
	assert.False(t, d.SameMonth(NewDate(2023, time.February, 28)))
	assert.Equal(t, time.Wednesday, d.Weekday())
}

func TestDate_Encoding(t *testing.T) {
	type wrapper struct {
		Day Date `json:"day" yaml:"day"`
	}

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(wrapper{Day: NewDate(2024, time.March, 15)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"day":"2024-03-15"}`, string(b))

		var got wrapper
		require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-04-01"}`), &got))
		assert.Equal(t, "2024-04-01", got.Day.String())

		assert.Error(t, json.Unmarshal([]byte(`{"day":"04/01/2024"}`), &got))
	})

	t.Run("yaml", func(t *testing.T) {
		b, err := yaml.Marshal(wrapper{Day: NewDate(2024, time.March, 15)})
		require.NoError(t, err)

		var got wrapper
		require.NoError(t, yaml.Unmarshal(b, &got))
		assert.Equal(t, "2024-03-15", got.Day.String())

		require.NoError(t, yaml.Unmarshal([]byte("day: 2024-12-31\n"), &got))
		assert.Equal(t, "2024-12-31", got.Day.String())
	})

	t.Run("zero value", func(t *testing.T) {
		var d Date
		assert.True(t, d.IsZero())
		assert.Equal(t, "", d.String())
	})
}
