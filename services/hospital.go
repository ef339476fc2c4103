package services

import (
	"errors"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Check the cache first, then fall back to the document store
* Callers can only see their own hospital; the claim scopes the filter
 */
func FetchHospitalByCode(c *gin.Context, hospitalId string) (map[string]interface{}, error) {
	key := util.HospitalKey + hospitalId

	if cached, exists, err := redis.GetCache(c, key); exists && err == nil {
		return cached, nil
	}

	coll := db.OpenCollections(util.HospitalCollection)
	result := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": hospitalId}, &result); err != nil {
		log.Println("Error from findOne for hospital:", err)
		return nil, errors.New(util.HOSPITAL_NOT_FOUND)
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Failed caching hospital:", err)
	}
	return result, nil
}

func FetchMyHospital(c *gin.Context) (map[string]interface{}, error) {
	return FetchHospitalByCode(c, c.GetString("hospitalId"))
}

func UpdateHospital(c *gin.Context, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	delete(data, "code")
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.HospitalCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for hospital:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.HOSPITAL_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.HospitalKey+hospitalId); err != nil {
		log.Println("Failed invalidating hospital cache:", err)
	}
	return "hospital updated", nil
}
