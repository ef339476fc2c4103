package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Hospital(router *gin.Engine) {
	hospital := router.Group("/hospital")
	{
		hospital.GET("/fetch", FetchMyHospital)
		hospital.PATCH("/update", authorization.Authorize(util.RoleAdmin), UpdateHospital)
	}
}

func FetchMyHospital(c *gin.Context) {
	hospital, err := services.FetchMyHospital(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(hospital))
}

func UpdateHospital(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateHospital(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
