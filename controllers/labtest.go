package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

func LabTest(router *gin.Engine) {
	lab := router.Group("/labtest")
	{
		lab.POST("/create", authorization.Authorize(util.RoleDoctor, util.RoleLab), CreateLabTest)
		lab.GET("/fetch/:testId", FetchLabTestByCode)
		lab.GET("/fetchAll", FetchAllLabTests)
		lab.PATCH("/status/:testId", authorization.Authorize(util.RoleLab), UpdateLabTestStatus)
		lab.PATCH("/sample/:testId", authorization.Authorize(util.RoleLab), UpdateSampleStatus)
		lab.DELETE("/delete/:testId", authorization.Authorize(util.RoleLab), DeleteLabTest)

		lab.PUT("/results/:testId", authorization.Authorize(util.RoleLab), ReplaceLabResults)
		lab.GET("/results/:testId", FetchLabResults)
	}

	types := router.Group("/labtesttype")
	{
		types.POST("/create", authorization.Authorize(util.RoleLab), CreateLabTestType)
		types.GET("/fetchAll", FetchAllLabTestTypes)
		types.PATCH("/update/:typeId", authorization.Authorize(util.RoleLab), UpdateLabTestType)
		types.DELETE("/delete/:typeId", authorization.Authorize(util.RoleLab), DeleteLabTestType)
	}
}

func CreateLabTest(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.CreateLabTest(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func FetchLabTestByCode(c *gin.Context) {
	testId := c.Param("testId")
	test, err := services.FetchLabTestByCode(c, testId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(test))
}

func FetchAllLabTests(c *gin.Context) {
	tests, err := services.FetchAllLabTests(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(tests))
}

func UpdateLabTestStatus(c *gin.Context) {
	testId := c.Param("testId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateLabTestStatus(c, testId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func UpdateSampleStatus(c *gin.Context) {
	testId := c.Param("testId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateSampleStatus(c, testId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteLabTest(c *gin.Context) {
	testId := c.Param("testId")
	msg, err := services.DeleteLabTest(c, testId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func ReplaceLabResults(c *gin.Context) {
	testId := c.Param("testId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.ReplaceLabResults(c, testId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func FetchLabResults(c *gin.Context) {
	testId := c.Param("testId")
	results, err := services.FetchLabResults(c, testId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(results))
}

func CreateLabTestType(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateLabTestType(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchAllLabTestTypes(c *gin.Context) {
	types, err := services.FetchAllLabTestTypes(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(types))
}

func UpdateLabTestType(c *gin.Context) {
	typeId := c.Param("typeId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateLabTestType(c, typeId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteLabTestType(c *gin.Context) {
	typeId := c.Param("typeId")
	msg, err := services.DeleteLabTestType(c, typeId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
