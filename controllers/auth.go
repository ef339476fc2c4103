package controllers

import (
	"net/http"

	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", Login)
		auth.POST("/register-hospital", RegisterHospital)
	}
}

func AuthPrivate(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/change-password", ChangePassword)
	}
}

func Login(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.Login(c, data)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func RegisterHospital(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.RegisterHospital(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func ChangePassword(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.ChangePassword(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
