package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2024-06-01", d.String())

	_, err = ParseDate("01.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_AddDays_AcrossDSTAndYear(t *testing.T) {
	// 31 марта 2024 в Европе переход на летнее время, дата не должна "съехать"
	d := MustParseDate("2024-03-30")
	assert.Equal(t, "2024-03-31", d.AddDays(1).String())
	assert.Equal(t, "2024-04-01", d.AddDays(2).String())

	assert.Equal(t, "2025-01-01", MustParseDate("2024-12-31").AddDays(1).String())
	assert.Equal(t, "2024-02-29", MustParseDate("2024-03-01").AddDays(-1).String())
}

func TestDate_AddMonths_ClampsDay(t *testing.T) {
	tests := []struct {
		from  string
		delta int
		want  string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", -1, "2024-02-29"},
		{"2024-12-15", 1, "2025-01-15"},
		{"2025-01-15", -1, "2024-12-15"},
		{"2024-05-31", 1, "2024-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(tt.from).AddMonths(tt.delta).String())
		})
	}
}

func TestDate_DateOfKeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	local := time.Date(2024, 6, 1, 0, 30, 0, 0, loc)

	assert.Equal(t, "2024-06-01", DateOf(local).String())
}

func TestDate_ComparableAsMapKey(t *testing.T) {
	m := map[Date]int{}
	m[MustParseDate("2024-06-01")]++
	m[NewDate(2024, time.June, 1)]++
	m[DateOf(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))]++

	assert.Len(t, m, 1)
	assert.Equal(t, 3, m[MustParseDate("2024-06-01")])
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-07-04", d.String())

	require.NoError(t, d.Scan([]byte("2024-07-05T00:00:00Z")))
	assert.Equal(t, "2024-07-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Date Date `json:"date"`
	}{Date: MustParseDate("2024-07-04")}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-07-04"}`, string(data))

	var decoded struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-12-31"}`), &decoded))
	assert.Equal(t, "2024-12-31", decoded.Date.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"31.12.2024"}`), &decoded))
}

func TestDate_DaysUntil(t *testing.T) {
	assert.Equal(t, 2, MustParseDate("2024-06-01").DaysUntil(MustParseDate("2024-06-03")))
	assert.Equal(t, -1, MustParseDate("2024-06-01").DaysUntil(MustParseDate("2024-05-31")))
	assert.Equal(t, 0, MustParseDate("2024-06-01").DaysUntil(MustParseDate("2024-06-01")))
}
