package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDispenseFilter(t *testing.T) {
	filter := dispenseFilter("HOS00001", "INV00007", 5)

	assert.Equal(t, "INV00007", filter["code"])
	assert.Equal(t, "HOS00001", filter["hospitalId"])
	// the stock guard: only match while at least the dispensed amount
	// remains, so the decrement can never go negative
	assert.Equal(t, bson.M{"$gte": 5}, filter["quantity"])
}

func TestDispenseUpdate(t *testing.T) {
	now := time.Now()
	update := dispenseUpdate(3, "USR00002", now)

	assert.Equal(t, bson.M{"quantity": -3}, update["$inc"])
	assert.Equal(t, bson.M{"updatedAt": now, "updatedBy": "USR00002"}, update["$set"])
}
