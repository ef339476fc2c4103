package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Vital(router *gin.Engine) {
	vital := router.Group("/vital")
	{
		vital.POST("/create", authorization.Authorize(util.RoleReception, util.RoleDoctor), CreateVital)
		vital.GET("/fetch/:patientId", FetchVitalsByPatient)
	}
}

func CreateVital(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateVital(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchVitalsByPatient(c *gin.Context) {
	patientId := c.Param("patientId")
	vitals, err := services.FetchVitalsByPatient(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(vitals))
}
