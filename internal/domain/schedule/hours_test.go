package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hm(t *testing.T, date time.Time, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	)
}

func TestTemplateWeekday(t *testing.T) {
	bh := DefaultBusinessHours()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Monday, monday.Weekday())

	slots := bh.Template(monday)
	require.NotEmpty(t, slots)

	// manhã: 09:00 até 12:00 inclusive, de 45 em 45
	assert.Equal(t, hm(t, monday, "09:00"), slots[0])
	assert.Contains(t, slots, hm(t, monday, "12:00"))

	// tarde: 13:00 em diante; 19:00 é o último que cabe antes de 19:30
	assert.Contains(t, slots, hm(t, monday, "13:00"))
	assert.Contains(t, slots, hm(t, monday, "19:00"))
	for _, s := range slots {
		assert.False(t, s.After(hm(t, monday, "19:30")))
	}

	// 5 de manhã + 9 à tarde
	assert.Len(t, slots, 14)
}

func TestTemplateSaturdayMorningOnly(t *testing.T) {
	bh := DefaultBusinessHours()
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Saturday, saturday.Weekday())

	slots := bh.Template(saturday)
	assert.Len(t, slots, 5)
	assert.Equal(t, hm(t, saturday, "09:00"), slots[0])
	assert.Equal(t, hm(t, saturday, "12:00"), slots[len(slots)-1])
}

func TestTemplateSundayClosed(t *testing.T) {
	bh := DefaultBusinessHours()
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.Empty(t, bh.Template(sunday))
}

func TestTemplateDeterministic(t *testing.T) {
	bh := DefaultBusinessHours()
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)

	first := bh.Template(day)
	second := bh.Template(day)
	assert.Equal(t, first, second)
}

func TestTemplateWindowEndIncluded(t *testing.T) {
	bh := BusinessHours{
		Days: map[time.Weekday][]Window{
			time.Monday: {{Start: "10:00", End: "11:30"}},
		},
		Step: 45 * time.Minute,
	}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	slots := bh.Template(monday)
	require.Len(t, slots, 3)
	assert.Equal(t, hm(t, monday, "10:00"), slots[0])
	assert.Equal(t, hm(t, monday, "10:45"), slots[1])
	assert.Equal(t, hm(t, monday, "11:30"), slots[2])
}
