package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Template(router *gin.Engine) {
	template := router.Group("/template")
	{
		template.GET("/fetch", FetchTemplate)
		template.PUT("/save", authorization.Authorize(util.RoleAdmin, util.RoleDoctor), SaveTemplate)
	}
}

func FetchTemplate(c *gin.Context) {
	tmpl, err := services.FetchTemplateByHospital(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(tmpl))
}

func SaveTemplate(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpsertTemplate(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
