package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrimmedString(t *testing.T) {
	data := map[string]interface{}{"name": "  Asha Rao  "}
	require.NoError(t, GetTrimmedString(data, "name"))
	assert.Equal(t, "Asha Rao", data["name"])

	assert.Error(t, GetTrimmedString(data, "missing"))
	data["blank"] = "   "
	assert.Error(t, GetTrimmedString(data, "blank"))
	data["num"] = 42
	assert.Error(t, GetTrimmedString(data, "num"))
}

func TestSerializeSubField(t *testing.T) {
	data := map[string]interface{}{
		"vitals": map[string]interface{}{"pulse": "72", "bp": "120/80"},
	}
	require.NoError(t, SerializeSubField(data, "vitals"))
	s, ok := data["vitals"].(string)
	require.True(t, ok)
	assert.Contains(t, s, `"pulse":"72"`)

	// already a string stays a string
	data["history"] = ` {"allergies":["penicillin"]} `
	require.NoError(t, SerializeSubField(data, "history"))
	assert.Equal(t, `{"allergies":["penicillin"]}`, data["history"])

	// absent field is fine
	require.NoError(t, SerializeSubField(data, "prescription"))
	_, exists := data["prescription"]
	assert.False(t, exists)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 5, ToInt(int32(5)))
	assert.Equal(t, 5, ToInt(int64(5)))
	assert.Equal(t, 5, ToInt(float64(5.7)))
	assert.Equal(t, 0, ToInt("five"))
	assert.Equal(t, 0, ToInt(nil))
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "PAT00007", FormatCode("PAT", 7))
	assert.Equal(t, "HOS12345", FormatCode("HOS", 12345))
}

func TestIsValidDepartment(t *testing.T) {
	assert.True(t, IsValidDepartment(DeptReception))
	assert.True(t, IsValidDepartment(DeptLab))
	assert.False(t, IsValidDepartment("billing"))
	assert.False(t, IsValidDepartment(""))
}

func TestResponses(t *testing.T) {
	ok := SuccessResponse("done")
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "done", ok["data"])

	bad := FailedResponse(errors.New("boom"))
	assert.Equal(t, false, bad["success"])
	assert.Equal(t, "boom", bad["error"])
}
