package services

import (
	"errors"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func CreateLabTestType(c *gin.Context, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "name"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")

	seq, err := db.NextSequence(c, util.LabTestTypeCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return "", err
	}
	code := util.FormatCode("LTT", seq)
	data["code"] = code
	data["hospitalId"] = hospitalId
	data["isActive"] = true
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(util.LabTestTypeCollection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for lab test type:", err)
		return "", err
	}
	return code, nil
}

func FetchAllLabTestTypes(c *gin.Context) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.LabTestTypeCollection)
	types, err := db.FindAll(c, coll, bson.M{"hospitalId": hospitalId, "isActive": true}, nil)
	if err != nil {
		log.Println("Error from findAll for lab test types:", err)
		return nil, err
	}
	return types, nil
}

func UpdateLabTestType(c *gin.Context, typeId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	delete(data, "code")
	delete(data, "hospitalId")
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.LabTestTypeCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": typeId, "hospitalId": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for lab test type:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.TEST_NOT_FOUND)
	}
	return "lab test type updated", nil
}

// DeleteLabTestType soft-disables via isActive so old tests keep resolving
// their type name.
func DeleteLabTestType(c *gin.Context, typeId string) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	coll := db.OpenCollections(util.LabTestTypeCollection)
	update := bson.M{"$set": bson.M{"isActive": false, "updatedBy": updatedBy}}
	result, err := db.UpdateOne(c, coll, bson.M{"code": typeId, "hospitalId": hospitalId}, update)
	if err != nil {
		log.Println("Error from updateOne for lab test type:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.TEST_NOT_FOUND)
	}
	return "lab test type removed", nil
}
