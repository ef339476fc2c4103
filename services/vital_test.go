package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVitalSnapshot(t *testing.T) {
	snapshot := vitalSnapshot(map[string]interface{}{
		"patientId": "PAT00001",
		"pulse":     "82",
		"bp":        "120/80",
		"notes":     "patient relaxed",
	})
	assert.Equal(t, map[string]interface{}{"pulse": "82", "bp": "120/80"}, snapshot)

	// a record with no readings must not overwrite the patient's last
	// mirrored snapshot, so it comes back empty and the mirror is skipped
	snapshot = vitalSnapshot(map[string]interface{}{"patientId": "PAT00001"})
	assert.Empty(t, snapshot)
}
