package services

import (
	"errors"
	"log"
	"time"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slotLayout = time.RFC3339

func CreateAppointment(c *gin.Context, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "patientName", "slot"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")
	if createdBy == "" {
		return "", errors.New(util.MISSING_CREATOR_CODE)
	}

	slot, err := time.Parse(slotLayout, data["slot"].(string))
	if err != nil {
		log.Println("Error while parsing slot:", err)
		return "", errors.New("slot must be RFC3339")
	}

	seq, err := db.NextSequence(c, util.AppointmentCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return "", err
	}
	code := util.FormatCode("APT", seq)
	data["code"] = code
	data["hospitalId"] = hospitalId
	data["slot"] = slot
	data["status"] = "scheduled"
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(util.AppointmentCollection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for appointment:", err)
		return "", err
	}
	return code, nil
}

func FetchAllAppointments(c *gin.Context) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	filter := bson.M{"hospitalId": hospitalId}
	if doctorId := c.Query("doctorId"); doctorId != "" {
		filter["doctorId"] = doctorId
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	coll := db.OpenCollections(util.AppointmentCollection)
	opts := options.Find().SetSort(bson.M{"slot": 1})
	appointments, err := db.FindAll(c, coll, filter, opts)
	if err != nil {
		log.Println("Error from findAll for appointments:", err)
		return nil, err
	}
	return appointments, nil
}

func UpdateAppointment(c *gin.Context, appointmentId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	delete(data, "code")
	delete(data, "hospitalId")
	if raw, ok := data["slot"].(string); ok {
		slot, err := time.Parse(slotLayout, raw)
		if err != nil {
			log.Println("Error while parsing slot:", err)
			return "", errors.New("slot must be RFC3339")
		}
		data["slot"] = slot
	}
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.AppointmentCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": appointmentId, "hospitalId": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for appointment:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.APPOINTMENT_NOT_FOUND)
	}
	return "appointment updated", nil
}

func DeleteAppointment(c *gin.Context, appointmentId string) (string, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.AppointmentCollection)
	result, err := db.DeleteOne(c, coll, bson.M{"code": appointmentId, "hospitalId": hospitalId})
	if err != nil {
		log.Println("Error from deleteOne for appointment:", err)
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", errors.New(util.APPOINTMENT_NOT_FOUND)
	}
	return "appointment deleted", nil
}
