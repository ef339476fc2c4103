package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func User(router *gin.Engine) {
	user := router.Group("/user")
	{
		user.POST("/create", authorization.Authorize(util.RoleAdmin), CreateUser)
		user.GET("/fetch/:userId", FetchUserByCode)
		user.GET("/fetchAll", FetchAllUsers)
		user.PATCH("/update/:userId", authorization.Authorize(util.RoleAdmin), UpdateUserByCode)
		user.DELETE("/delete/:userId", authorization.Authorize(util.RoleAdmin), DeleteUser)
	}
}

func CreateUser(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateUser(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchUserByCode(c *gin.Context) {
	userId := c.Param("userId")
	user, err := services.FetchUserByCode(c, userId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(user))
}

func FetchAllUsers(c *gin.Context) {
	users, err := services.FetchAllUsers(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(users))
}

func UpdateUserByCode(c *gin.Context) {
	userId := c.Param("userId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateUserByCode(c, userId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteUser(c *gin.Context) {
	userId := c.Param("userId")
	msg, err := services.DeleteUser(c, userId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
