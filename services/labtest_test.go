package services

import (
	"testing"
	"time"

	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatusUpdate(t *testing.T) {
	now := time.Now()

	update := buildStatusUpdate(util.StatusProcessing, "USR00001", now)
	assert.Equal(t, util.StatusProcessing, update["status"])
	assert.Equal(t, "USR00001", update["updatedBy"])
	_, stamped := update["completedAt"]
	assert.False(t, stamped)

	update = buildStatusUpdate(util.StatusCompleted, "USR00001", now)
	assert.Equal(t, now, update["completedAt"])

	// any client supplied string is written as-is; no transition table
	update = buildStatusUpdate("whatever_the_client_sent", "USR00001", now)
	assert.Equal(t, "whatever_the_client_sent", update["status"])
}

func TestSerializeSubFields(t *testing.T) {
	data := map[string]interface{}{
		"vitals":  map[string]interface{}{"pulse": "80"},
		"history": "already text",
	}
	assert.NoError(t, serializeSubFields(data))
	_, isString := data["vitals"].(string)
	assert.True(t, isString)
	assert.Equal(t, "already text", data["history"])
}
