package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointment := router.Group("/appointment")
	{
		appointment.POST("/create", authorization.Authorize(util.RoleReception), CreateAppointment)
		appointment.GET("/fetchAll", FetchAllAppointments)
		appointment.PATCH("/update/:appointmentId", authorization.Authorize(util.RoleReception, util.RoleDoctor), UpdateAppointment)
		appointment.DELETE("/delete/:appointmentId", authorization.Authorize(util.RoleReception), DeleteAppointment)
	}
}

func CreateAppointment(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateAppointment(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func UpdateAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateAppointment(c, appointmentId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	msg, err := services.DeleteAppointment(c, appointmentId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
