package services

import (
	"errors"
	"log"
	"time"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	"github.com/krushnasaruk55/medflow-pro-6.0/socket"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Order a test for a patient. New tests start pending with the sample
* pending; priority defaults to normal. The lab room gets lab-test-created
* so its dashboard refetches the worklist.
 */
func CreateLabTest(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.RequireFields(data, "patientId", "testName"); err != nil {
		return nil, err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")
	if createdBy == "" {
		return nil, errors.New(util.MISSING_CREATOR_CODE)
	}

	patient, err := FetchPatientByCode(c, data["patientId"].(string))
	if err != nil {
		return nil, err
	}

	seq, err := db.NextSequence(c, util.LabTestCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return nil, err
	}
	code := util.FormatCode("LAB", seq)

	priority, _ := data["priority"].(string)
	if priority != util.PriorityUrgent {
		priority = util.PriorityNormal
	}

	data["code"] = code
	data["hospitalId"] = hospitalId
	data["patientName"] = patient["name"]
	data["status"] = util.StatusPending
	data["sampleStatus"] = util.SamplePending
	data["priority"] = priority
	data["requestedBy"] = createdBy
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(util.LabTestCollection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for lab test:", err)
		return nil, err
	}

	socket.Emit(socket.Room(hospitalId, util.DeptLab), socket.EventLabTestCreated, map[string]interface{}{
		"testId":    code,
		"patientId": data["patientId"],
		"testName":  data["testName"],
		"priority":  priority,
	})

	return map[string]interface{}{"testId": code}, nil
}

func FetchLabTestByCode(c *gin.Context, testId string) (map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.LabTestCollection)
	result := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": testId, "hospitalId": hospitalId}, &result); err != nil {
		log.Println("Error from findOne for lab test:", err)
		return nil, errors.New(util.TEST_NOT_FOUND)
	}
	return result, nil
}

func FetchAllLabTests(c *gin.Context) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	filter := bson.M{"hospitalId": hospitalId}

	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if priority := c.Query("priority"); priority != "" {
		filter["priority"] = priority
	}
	if patientId := c.Query("patientId"); patientId != "" {
		filter["patientId"] = patientId
	}

	coll := db.OpenCollections(util.LabTestCollection)
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	tests, err := db.FindAll(c, coll, filter, opts)
	if err != nil {
		log.Println("Error from findAll for lab tests:", err)
		return nil, err
	}
	return tests, nil
}

// buildStatusUpdate writes whatever status string the client sent; there is
// no transition table. completedAt is stamped when the test lands in
// completed.
func buildStatusUpdate(status, updatedBy string, now time.Time) bson.M {
	update := bson.M{
		"status":    status,
		"updatedAt": now,
		"updatedBy": updatedBy,
	}
	if status == util.StatusCompleted {
		update["completedAt"] = now
	}
	return update
}

/*
* Set the status from client input and broadcast lab-status-updated to the
* lab room and to the doctor room so the ordering dashboard refreshes too
 */
func UpdateLabTestStatus(c *gin.Context, testId string, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "status"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	update := buildStatusUpdate(data["status"].(string), updatedBy, time.Now())
	if notes, ok := data["notes"].(string); ok && notes != "" {
		update["notes"] = notes
	}

	coll := db.OpenCollections(util.LabTestCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": testId, "hospitalId": hospitalId}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne for lab test status:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.TEST_NOT_FOUND)
	}

	payload := map[string]interface{}{"testId": testId, "status": data["status"]}
	socket.Emit(socket.Room(hospitalId, util.DeptLab), socket.EventLabStatusUpdated, payload)
	socket.Emit(socket.Room(hospitalId, util.DeptDoctor), socket.EventLabStatusUpdated, payload)

	return "status updated", nil
}

func UpdateSampleStatus(c *gin.Context, testId string, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "sampleStatus"); err != nil {
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	update := bson.M{
		"sampleStatus": data["sampleStatus"],
		"updatedAt":    time.Now(),
		"updatedBy":    updatedBy,
	}

	coll := db.OpenCollections(util.LabTestCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": testId, "hospitalId": hospitalId}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne for sample status:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.TEST_NOT_FOUND)
	}
	return "sample status updated", nil
}

func DeleteLabTest(c *gin.Context, testId string) (string, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.LabTestCollection)
	result, err := db.DeleteOne(c, coll, bson.M{"code": testId, "hospitalId": hospitalId})
	if err != nil {
		log.Println("Error from deleteOne for lab test:", err)
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", errors.New(util.TEST_NOT_FOUND)
	}
	// results for the test go with it
	resultColl := db.OpenCollections(util.LabResultCollection)
	if _, err := db.DeleteMany(c, resultColl, bson.M{"testId": testId, "hospitalId": hospitalId}); err != nil {
		log.Println("Error from deleteMany for lab results:", err)
	}
	return "lab test deleted", nil
}

/*
* Recording results replaces the whole set: delete the previous rows for
* the test, then insert the new ones. The two writes are not wrapped in a
* transaction.
 */
func ReplaceLabResults(c *gin.Context, testId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")

	if _, err := FetchLabTestByCode(c, testId); err != nil {
		return "", err
	}

	rawResults, ok := data["results"].([]interface{})
	if !ok || len(rawResults) == 0 {
		return "", errors.New("results not provided")
	}

	docs := []interface{}{}
	for _, raw := range rawResults {
		row, ok := raw.(map[string]interface{})
		if !ok {
			return "", errors.New("invalid result row")
		}
		if err := util.RequireFields(row, "parameter", "value"); err != nil {
			return "", err
		}
		seq, err := db.NextSequence(c, util.LabResultCollection)
		if err != nil {
			log.Println("Error from nextSequence:", err)
			return "", err
		}
		row["code"] = util.FormatCode("RES", seq)
		row["testId"] = testId
		row["hospitalId"] = hospitalId
		util.PrepareAudit(row, createdBy)
		docs = append(docs, row)
	}

	coll := db.OpenCollections(util.LabResultCollection)
	if _, err := db.DeleteMany(c, coll, bson.M{"testId": testId, "hospitalId": hospitalId}); err != nil {
		log.Println("Error from deleteMany for lab results:", err)
		return "", err
	}
	if _, err := db.CreateMany(c, coll, docs); err != nil {
		log.Println("Error from createMany for lab results:", err)
		return "", err
	}
	return "results recorded", nil
}

func FetchLabResults(c *gin.Context, testId string) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.LabResultCollection)
	results, err := db.FindAll(c, coll, bson.M{"testId": testId, "hospitalId": hospitalId}, nil)
	if err != nil {
		log.Println("Error from findAll for lab results:", err)
		return nil, err
	}
	return results, nil
}
