package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestQueueCounterFilter(t *testing.T) {
	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	filter := queueCounterFilter("HOS00001", "doctor", day)
	assert.Equal(t, bson.M{
		"hospitalId": "HOS00001",
		"department": "doctor",
		"date":       "31-08-2026",
	}, filter)

	// the next day targets a fresh counter document
	nextDay := queueCounterFilter("HOS00001", "doctor", day.AddDate(0, 0, 1))
	assert.Equal(t, "01-09-2026", nextDay["date"])
	assert.NotEqual(t, filter["date"], nextDay["date"])

	// departments and hospitals each count independently
	assert.NotEqual(t, filter, queueCounterFilter("HOS00001", "pharmacy", day))
	assert.NotEqual(t, filter, queueCounterFilter("HOS00002", "doctor", day))
}

func TestQueueMoveRooms(t *testing.T) {
	rooms := queueMoveRooms("HOS00001", "reception", "doctor")
	assert.Equal(t, []string{"HOS00001:doctor", "HOS00001:reception"}, rooms)

	// first registration has no source department
	assert.Equal(t, []string{"HOS00001:doctor"}, queueMoveRooms("HOS00001", "", "doctor"))

	// a move within the same department notifies it once
	assert.Equal(t, []string{"HOS00001:doctor"}, queueMoveRooms("HOS00001", "doctor", "doctor"))
}

func TestStripQueueFields(t *testing.T) {
	data := map[string]interface{}{
		"name":       "Asha Rao",
		"phoneNo":    "9876543210",
		"code":       "PAT00099",
		"hospitalId": "HOS00002",
		"department": "pharmacy",
		"token":      42,
		"tokenDate":  "31-08-2026",
	}
	stripQueueFields(data)

	// a plain patch cannot reassign identity or queue placement
	for _, field := range []string{"code", "hospitalId", "department", "token", "tokenDate"} {
		_, present := data[field]
		assert.False(t, present, field)
	}
	assert.Equal(t, "Asha Rao", data["name"])
	assert.Equal(t, "9876543210", data["phoneNo"])
}
