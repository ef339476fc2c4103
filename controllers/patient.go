package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Patient(router *gin.Engine) {
	patient := router.Group("/patient")
	{
		patient.POST("/create", authorization.Authorize(util.RoleReception), RegisterPatient)
		patient.GET("/fetch/:patientId", FetchPatientByCode)
		patient.GET("/fetchAll", FetchAllPatients)
		patient.PATCH("/update/:patientId", authorization.Authorize(util.RoleReception, util.RoleDoctor, util.RolePharmacy), UpdatePatientByCode)
		patient.PATCH("/queue/:patientId", authorization.Authorize(util.RoleReception, util.RoleDoctor, util.RolePharmacy, util.RoleLab), MovePatientQueue)
		patient.DELETE("/delete/:patientId", authorization.Authorize(util.RoleReception), DeletePatient)
	}
}

func RegisterPatient(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.RegisterPatient(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func FetchPatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	patient, err := services.FetchPatientByCode(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

func FetchAllPatients(c *gin.Context) {
	patients, err := services.FetchAllPatients(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patients))
}

func UpdatePatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdatePatientByCode(c, patientId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func MovePatientQueue(c *gin.Context) {
	patientId := c.Param("patientId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.MovePatientQueue(c, patientId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func DeletePatient(c *gin.Context) {
	patientId := c.Param("patientId")
	msg, err := services.DeletePatient(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
