package services

import (
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTemplate fills in a usable layout for hospitals that never saved
// one.
func defaultTemplate(hospitalId, hospitalName string) map[string]interface{} {
	return map[string]interface{}{
		"hospitalId": hospitalId,
		"headerText": hospitalName,
		"subHeader":  "",
		"footerText": "Get well soon",
		"showVitals": true,
		"showToken":  true,
		"marginX":    float64(15),
		"marginY":    float64(20),
	}
}

func FetchTemplateByHospital(c *gin.Context) (map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	key := util.TemplateKey + hospitalId

	if cached, exists, err := redis.GetCache(c, key); exists && err == nil {
		return cached, nil
	}

	coll := db.OpenCollections(util.TemplateCollection)
	result := make(map[string]interface{})
	err := db.FindOne(c, coll, bson.M{"hospitalId": hospitalId}, &result)
	if err != nil {
		hospital, herr := FetchMyHospital(c)
		name := ""
		if herr == nil {
			name, _ = hospital["name"].(string)
		}
		return defaultTemplate(hospitalId, name), nil
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Failed caching template:", err)
	}
	return result, nil
}

/*
* One template per hospital: upsert on hospitalId and invalidate the cache
 */
func UpsertTemplate(c *gin.Context, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	delete(data, "code")
	data["hospitalId"] = hospitalId
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.TemplateCollection)
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(c, bson.M{"hospitalId": hospitalId}, bson.M{"$set": data}, opts); err != nil {
		log.Println("Error from upsert for template:", err)
		return "", err
	}
	if err := redis.DeleteCache(c, util.TemplateKey+hospitalId); err != nil {
		log.Println("Failed invalidating template cache:", err)
	}
	return "template saved", nil
}
