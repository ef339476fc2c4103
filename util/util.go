package util

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"success": false,
		"error":   err.Error(),
	}
}

/*
* Check the field exists in the data and is a non empty string
* Trim the value and write it back into the map
 */
func GetTrimmedString(data map[string]interface{}, field string) error {
	raw, ok := data[field]
	if !ok {
		return fmt.Errorf("%s not provided", field)
	}
	val, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%s must be a string", field)
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	data[field] = val
	return nil
}

func TrimIfExists(data map[string]interface{}, field string) error {
	if _, ok := data[field]; !ok {
		return nil
	}
	return GetTrimmedString(data, field)
}

// PrepareAudit stamps the audit fields the way every collection carries them.
func PrepareAudit(data map[string]interface{}, createdBy string) {
	now := time.Now()
	data["createdAt"] = now
	data["createdBy"] = createdBy
	data["updatedAt"] = now
	data["updatedBy"] = createdBy
}

func StampUpdate(data map[string]interface{}, updatedBy string) {
	data["updatedAt"] = time.Now()
	data["updatedBy"] = updatedBy
}

/*
* Sub fields like vitals, prescription and history live on the patient
* document as JSON serialized strings. Clients may send them as objects
* or as already serialized strings; either way a string is stored.
 */
func SerializeSubField(data map[string]interface{}, field string) error {
	raw, ok := data[field]
	if !ok || raw == nil {
		return nil
	}
	if s, ok := raw.(string); ok {
		data[field] = strings.TrimSpace(s)
		return nil
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		log.Println("Error while serializing sub field:", field, err)
		return fmt.Errorf("%s is not serializable", field)
	}
	data[field] = string(buf)
	return nil
}

// ToInt coerces the numeric types JSON decoding and Mongo reads hand back.
func ToInt(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		i, _ := v.Int64()
		return int(i)
	default:
		return 0
	}
}

func RequireFields(data map[string]interface{}, fields ...string) error {
	for _, f := range fields {
		if err := GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return err
		}
	}
	return nil
}

// FormatCode renders a sequence number as a fixed width entity code, e.g.
// PAT00042.
func FormatCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s%05d", prefix, seq)
}
