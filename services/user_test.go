package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUsernameTakenFilter(t *testing.T) {
	filter := usernameTakenFilter("HOS00001", "frontdesk")
	assert.Equal(t, bson.M{"hospitalId": "HOS00001", "username": "frontdesk"}, filter)

	// the same username under another hospital builds a different lookup,
	// so it is not counted as a duplicate
	assert.NotEqual(t, filter, usernameTakenFilter("HOS00002", "frontdesk"))
}
