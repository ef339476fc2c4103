package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildPrescriptionPDF(t *testing.T) {
	patient := map[string]interface{}{
		"name":         "Asha Rao",
		"age":          34,
		"gender":       "F",
		"token":        12,
		"vitals":       `{"pulse":"72","bp":"120/80"}`,
		"prescription": `[{"medicine":"Paracetamol 500mg","dosage":"1-0-1","duration":"5 days"}]`,
	}
	tmpl := map[string]interface{}{
		"headerText": "City Care Hospital",
		"subHeader":  "24x7 Emergency",
		"footerText": "Get well soon",
		"showVitals": true,
		"showToken":  true,
	}

	buf, err := BuildPrescriptionPDF(patient, tmpl)
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")), "output should be a PDF")
}

func TestBuildPrescriptionPDF_FreeTextPrescription(t *testing.T) {
	patient := map[string]interface{}{
		"name":         "Ravi",
		"age":          50,
		"gender":       "M",
		"prescription": "Tab. Metformin 500mg twice daily after food",
	}

	buf, err := BuildPrescriptionPDF(patient, map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")))
}

func TestParsePrescription(t *testing.T) {
	lines, ok := parsePrescription(`[{"medicine":"Amoxicillin","dosage":"1-1-1","duration":"3 days"}]`)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, "Amoxicillin", lines[0].Medicine)

	_, ok = parsePrescription("plain advice, no structure")
	assert.False(t, ok)
}

func TestBuildExcel(t *testing.T) {
	rows := []map[string]interface{}{
		{"code": "PAT00001", "name": "Asha", "token": 1},
		{"code": "PAT00002", "name": "Ravi", "token": 2},
	}
	buf, err := BuildExcel("Patients", []string{"Code", "Name", "Token"}, []string{"code", "name", "token"}, rows)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Patients", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Code", got)
	got, err = f.GetCellValue("Patients", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got)
}
