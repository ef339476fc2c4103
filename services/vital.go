package services

import (
	"encoding/json"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Store the vital as its own record and mirror the latest reading onto the
* patient document's vitals sub field so the doctor dashboard sees it
* without a second fetch
 */
func CreateVital(c *gin.Context, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "patientId"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")

	patientId := data["patientId"].(string)
	if _, err := FetchPatientByCode(c, patientId); err != nil {
		return "", err
	}

	seq, err := db.NextSequence(c, util.VitalCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return "", err
	}
	code := util.FormatCode("VIT", seq)
	data["code"] = code
	data["hospitalId"] = hospitalId
	data["recordedBy"] = createdBy
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(util.VitalCollection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for vital:", err)
		return "", err
	}

	snapshot := vitalSnapshot(data)
	if len(snapshot) == 0 {
		// nothing measured, keep the previous reading on the patient
		return code, nil
	}
	buf, err := json.Marshal(snapshot)
	if err != nil {
		log.Println("Error while serializing vitals snapshot:", err)
		return code, nil
	}
	patientColl := db.OpenCollections(util.PatientCollection)
	filter := bson.M{"code": patientId, "hospitalId": hospitalId}
	if _, err := db.UpdateOne(c, patientColl, filter, bson.M{"$set": bson.M{"vitals": string(buf)}}); err != nil {
		log.Println("Error while mirroring vitals onto patient:", err)
	}
	if err := redis.DeleteCache(c, util.PatientKey+patientId); err != nil {
		log.Println("Failed invalidating patient cache:", err)
	}

	return code, nil
}

// vitalSnapshot picks the measured readings out of the payload for the
// mirror onto the patient document.
func vitalSnapshot(data map[string]interface{}) map[string]interface{} {
	snapshot := map[string]interface{}{}
	for _, f := range []string{"temperature", "pulse", "bp", "spo2", "weight", "height"} {
		if v, ok := data[f]; ok {
			snapshot[f] = v
		}
	}
	return snapshot
}

func FetchVitalsByPatient(c *gin.Context, patientId string) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.VitalCollection)
	filter := bson.M{"patientId": patientId, "hospitalId": hospitalId}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	vitals, err := db.FindAll(c, coll, filter, opts)
	if err != nil {
		log.Println("Error from findAll for vitals:", err)
		return nil, err
	}
	return vitals, nil
}
