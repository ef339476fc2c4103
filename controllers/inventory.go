package controllers

import (
	"net/http"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/services"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
)

// Inventory mounts the pharmacy stock under /inventory and the lab stock
// under /labinventory; both share the same handlers against different
// collections.
func Inventory(router *gin.Engine) {
	mountInventory(router, "/inventory", util.InventoryCollection, util.RolePharmacy)
	mountInventory(router, "/labinventory", util.LabInventoryCollection, util.RoleLab)
}

func mountInventory(router *gin.Engine, path, collection, role string) {
	grp := router.Group(path)
	{
		grp.POST("/create", authorization.Authorize(role), createInventoryHandler(collection))
		grp.GET("/fetchAll", fetchAllInventoryHandler(collection))
		grp.PATCH("/update/:itemId", authorization.Authorize(role), updateInventoryHandler(collection))
		grp.POST("/dispense/:itemId", authorization.Authorize(role), dispenseInventoryHandler(collection))
		grp.DELETE("/delete/:itemId", authorization.Authorize(role), deleteInventoryHandler(collection))
	}
}

func createInventoryHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := make(map[string]interface{})
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		code, err := services.CreateInventoryItem(c, collection, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(code))
	}
}

func fetchAllInventoryHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := services.FetchAllInventory(c, collection)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(items))
	}
}

func updateInventoryHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId := c.Param("itemId")
		data := make(map[string]interface{})
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		msg, err := services.UpdateInventoryItem(c, collection, itemId, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
	}
}

func dispenseInventoryHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId := c.Param("itemId")
		data := make(map[string]interface{})
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		msg, err := services.DispenseInventoryItem(c, collection, itemId, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
	}
}

func deleteInventoryHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId := c.Param("itemId")
		msg, err := services.DeleteInventoryItem(c, collection, itemId)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
	}
}
