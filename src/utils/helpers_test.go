package utils

import (
	"testing"
	"time"

	"explorecamp/src/models"
	"explorecamp/src/types"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2030-06-07")
	assert.Nil(t, err)
	assert.Equal(t, 2030, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 7, date.Day())
	assert.Equal(t, time.UTC, date.Location())

	_, err = ParseDate("07/06/2030")
	assert.NotNil(t, err)

	_, err = ParseDate("")
	assert.NotNil(t, err)
}

func TestDatesIn(t *testing.T) {
	from, _ := ParseDate("2030-06-07")
	to, _ := ParseDate("2030-06-10")

	dates := DatesIn(from, to)
	assert.Len(t, dates, 3)
	assert.Equal(t, from, dates[0])
	// half-open range: the check-out day is not a night stayed
	assert.Equal(t, "2030-06-09", dates[len(dates)-1].Format(types.DATE_FORMAT))

	assert.Empty(t, DatesIn(from, from))
	assert.Empty(t, DatesIn(to, from))
}

func TestAvailabilityCacheKey(t *testing.T) {
	assert.Equal(t, "42:availability", AvailabilityCacheKey(42))
}

func TestRangeIsFree(t *testing.T) {
	from, _ := ParseDate("2030-06-07")
	to, _ := ParseDate("2030-06-09")

	free := []models.Availability{
		{ProductID: 1, Date: from, IsBooked: false},
		{ProductID: 1, Date: from.AddDate(0, 0, 1), IsBooked: false},
	}
	assert.True(t, rangeIsFree(free, from, to))

	// one night already taken
	taken := []models.Availability{
		{ProductID: 1, Date: from, IsBooked: false},
		{ProductID: 1, Date: from.AddDate(0, 0, 1), IsBooked: true},
	}
	assert.False(t, rangeIsFree(taken, from, to))

	// a day never opened for booking makes the whole range unavailable
	sparse := []models.Availability{
		{ProductID: 1, Date: from, IsBooked: false},
	}
	assert.False(t, rangeIsFree(sparse, from, to))

	assert.False(t, rangeIsFree(nil, from, to))
}
