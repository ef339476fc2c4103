package controllers

import (
	"fmt"
	"net/http"

	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Report(router *gin.Engine) {
	report := router.Group("/report")
	{
		report.GET("/prescription/:patientId/pdf", PrescriptionPDF)
		report.GET("/export/patients", ExportPatients)
		report.GET("/export/labtests", ExportLabTests)
	}
}

func PrescriptionPDF(c *gin.Context) {
	patientId := c.Param("patientId")
	buf, filename, err := services.GeneratePrescriptionPDF(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", buf)
}

func ExportPatients(c *gin.Context) {
	buf, filename, err := services.ExportPatientsExcel(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}

func ExportLabTests(c *gin.Context) {
	buf, filename, err := services.ExportLabTestsExcel(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}
