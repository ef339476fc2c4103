package services

import (
	"errors"
	"log"
	"time"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Pharmacy stock and lab stock share the handlers; the route decides which
// collection a request lands in.

func CreateInventoryItem(c *gin.Context, collection string, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "name"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")
	if createdBy == "" {
		return "", errors.New(util.MISSING_CREATOR_CODE)
	}

	seq, err := db.NextSequence(c, collection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return "", err
	}
	code := util.FormatCode("INV", seq)
	data["code"] = code
	data["hospitalId"] = hospitalId
	data["quantity"] = util.ToInt(data["quantity"])
	data["reorderLevel"] = util.ToInt(data["reorderLevel"])
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(collection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for inventory item:", err)
		return "", err
	}
	return code, nil
}

func FetchAllInventory(c *gin.Context, collection string) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	filter := bson.M{"hospitalId": hospitalId}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	coll := db.OpenCollections(collection)
	items, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from findAll for inventory:", err)
		return nil, err
	}
	return items, nil
}

func UpdateInventoryItem(c *gin.Context, collection, itemId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	delete(data, "code")
	delete(data, "hospitalId")
	if _, ok := data["quantity"]; ok {
		data["quantity"] = util.ToInt(data["quantity"])
	}
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(collection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": itemId, "hospitalId": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for inventory item:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.ITEM_NOT_FOUND)
	}
	return "item updated", nil
}

// dispenseFilter matches the item only while at least qty units remain, so
// the decrement can never drive the stock below zero even when two
// dispenses race.
func dispenseFilter(hospitalId, itemId string, qty int) bson.M {
	return bson.M{
		"code":       itemId,
		"hospitalId": hospitalId,
		"quantity":   bson.M{"$gte": qty},
	}
}

// dispenseUpdate decrements the stock and stamps the audit fields in the
// same write.
func dispenseUpdate(qty int, updatedBy string, now time.Time) bson.M {
	return bson.M{
		"$inc": bson.M{"quantity": -qty},
		"$set": bson.M{"updatedAt": now, "updatedBy": updatedBy},
	}
}

/*
* Decrement stock with a guarded update: the filter requires quantity >=
* the dispensed amount so the count never goes below zero
 */
func DispenseInventoryItem(c *gin.Context, collection, itemId string, data map[string]interface{}) (string, error) {
	qty := util.ToInt(data["quantity"])
	if qty <= 0 {
		return "", errors.New("quantity must be positive")
	}
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	coll := db.OpenCollections(collection)
	result, err := db.UpdateOne(c, coll, dispenseFilter(hospitalId, itemId, qty), dispenseUpdate(qty, updatedBy, time.Now()))
	if err != nil {
		log.Println("Error from updateOne for dispense:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		count, err := db.CountDocuments(c, coll, bson.M{"code": itemId, "hospitalId": hospitalId})
		if err == nil && count > 0 {
			return "", errors.New(util.INSUFFICIENT_STOCK)
		}
		return "", errors.New(util.ITEM_NOT_FOUND)
	}
	return "dispensed", nil
}

func DeleteInventoryItem(c *gin.Context, collection, itemId string) (string, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(collection)
	result, err := db.DeleteOne(c, coll, bson.M{"code": itemId, "hospitalId": hospitalId})
	if err != nil {
		log.Println("Error from deleteOne for inventory item:", err)
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", errors.New(util.ITEM_NOT_FOUND)
	}
	return "item deleted", nil
}
