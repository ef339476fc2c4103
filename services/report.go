package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// prescriptionLine is the shape the doctor dashboard serializes into the
// patient's prescription sub field.
type prescriptionLine struct {
	Medicine string `json:"medicine"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
	Note     string `json:"note"`
}

func parsePrescription(raw string) ([]prescriptionLine, bool) {
	lines := []prescriptionLine{}
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, false
	}
	return lines, true
}

func templString(tmpl map[string]interface{}, field, fallback string) string {
	if v, ok := tmpl[field].(string); ok && v != "" {
		return v
	}
	return fallback
}

func templFloat(tmpl map[string]interface{}, field string, fallback float64) float64 {
	switch v := tmpl[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

func templBool(tmpl map[string]interface{}, field string, fallback bool) bool {
	if v, ok := tmpl[field].(bool); ok {
		return v
	}
	return fallback
}

/*
* Render the prescription with the hospital's template layout: header and
* sub header, the patient block, optional vitals, the prescription lines
* and the footer. Unparseable prescription strings are printed verbatim.
 */
func BuildPrescriptionPDF(patient map[string]interface{}, tmpl map[string]interface{}) ([]byte, error) {
	marginX := templFloat(tmpl, "marginX", 15)
	marginY := templFloat(tmpl, "marginY", 20)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, templString(tmpl, "headerText", "Prescription"), "", 1, "C", false, 0, "")
	if sub := templString(tmpl, "subHeader", ""); sub != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, sub, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(marginX, pdf.GetY(), 210-marginX, pdf.GetY())
	pdf.Ln(4)

	name, _ := patient["name"].(string)
	gender, _ := patient["gender"].(string)
	age := util.ToInt(patient["age"])

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(95, 6, fmt.Sprintf("Patient: %s", name), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Age/Gender: %d / %s", age, gender), "", 1, "L", false, 0, "")
	if templBool(tmpl, "showToken", true) {
		pdf.CellFormat(95, 6, fmt.Sprintf("Token: %d", util.ToInt(patient["token"])), "", 0, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("02-01-2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if templBool(tmpl, "showVitals", true) {
		if raw, ok := patient["vitals"].(string); ok && raw != "" {
			vitals := map[string]interface{}{}
			if err := json.Unmarshal([]byte(raw), &vitals); err == nil && len(vitals) > 0 {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.CellFormat(0, 6, "Vitals", "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 10)
				for _, f := range []string{"temperature", "pulse", "bp", "spo2", "weight", "height"} {
					if v, ok := vitals[f]; ok && v != "" {
						pdf.CellFormat(0, 5, fmt.Sprintf("%s: %v", f, v), "", 1, "L", false, 0, "")
					}
				}
				pdf.Ln(3)
			}
		}
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Rx", "", 1, "L", false, 0, "")
	raw, _ := patient["prescription"].(string)
	if raw != "" {
		if lines, ok := parsePrescription(raw); ok {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(70, 6, "Medicine", "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, "Dosage", "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, "Duration", "1", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range lines {
				pdf.CellFormat(70, 6, line.Medicine, "1", 0, "L", false, 0, "")
				pdf.CellFormat(45, 6, line.Dosage, "1", 0, "L", false, 0, "")
				pdf.CellFormat(0, 6, line.Duration, "1", 1, "L", false, 0, "")
				if line.Note != "" {
					pdf.SetFont("Helvetica", "I", 9)
					pdf.CellFormat(0, 5, "  "+line.Note, "", 1, "L", false, 0, "")
					pdf.SetFont("Helvetica", "", 10)
				}
			}
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, raw, "", "L", false)
		}
	}

	if footer := templString(tmpl, "footerText", ""); footer != "" {
		pdf.SetY(-30)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, footer, "T", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("Error while writing pdf:", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
* Fetch the patient and the hospital's template and hand back the rendered
* PDF bytes for the controller to stream
 */
func GeneratePrescriptionPDF(c *gin.Context, patientId string) ([]byte, string, error) {
	patient, err := FetchPatientByCode(c, patientId)
	if err != nil {
		return nil, "", err
	}
	tmpl, err := FetchTemplateByHospital(c)
	if err != nil {
		log.Println("Error from fetchTemplateByHospital:", err)
		return nil, "", err
	}
	buf, err := BuildPrescriptionPDF(patient, tmpl)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("prescription_%s.pdf", patientId)
	return buf, filename, nil
}

func cellValue(row map[string]interface{}, field string) interface{} {
	v, ok := row[field]
	if !ok || v == nil {
		return ""
	}
	if t, ok := v.(time.Time); ok {
		return t.Format("02-01-2006 15:04")
	}
	return v
}

// BuildExcel writes one sheet with a header row followed by the given rows.
func BuildExcel(sheet string, headers []string, fields []string, rows []map[string]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for i, field := range fields {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, cellValue(row, field))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Println("Error while writing excel:", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportPatientsExcel(c *gin.Context) ([]byte, string, error) {
	patients, err := FetchAllPatients(c)
	if err != nil {
		return nil, "", err
	}
	headers := []string{"Code", "Name", "Age", "Gender", "Phone", "Department", "Token", "Registered"}
	fields := []string{"code", "name", "age", "gender", "phoneNo", "department", "token", "createdAt"}
	buf, err := BuildExcel("Patients", headers, fields, patients)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("patients_%s.xlsx", time.Now().Format("02-01-2006"))
	return buf, filename, nil
}

func ExportLabTestsExcel(c *gin.Context) ([]byte, string, error) {
	tests, err := FetchAllLabTests(c)
	if err != nil {
		return nil, "", err
	}
	headers := []string{"Code", "Patient", "Test", "Status", "Sample", "Priority", "Requested"}
	fields := []string{"code", "patientName", "testName", "status", "sampleStatus", "priority", "createdAt"}
	buf, err := BuildExcel("LabTests", headers, fields, tests)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("labtests_%s.xlsx", time.Now().Format("02-01-2006"))
	return buf, filename, nil
}
