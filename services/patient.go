package services

import (
	"context"
	"errors"
	"log"
	"time"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/socket"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tokenDateLayout = "02-01-2006"

// queueCounterFilter keys the token counter on (hospitalId, department,
// date) so every department restarts from 1 each day.
func queueCounterFilter(hospitalId, department string, now time.Time) bson.M {
	return bson.M{
		"hospitalId": hospitalId,
		"department": department,
		"date":       now.Format(tokenDateLayout),
	}
}

/*
* Atomically bump the per department counter for today and hand back the
* new token number
 */
func NextQueueToken(ctx context.Context, hospitalId, department string) (int, error) {
	coll := db.OpenCollections(util.QueueCounterCollection)

	filter := queueCounterFilter(hospitalId, department, time.Now())
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		log.Println("Error from findOneAndUpdate for queue counter:", err)
		return 0, err
	}
	return doc.Seq, nil
}

func serializeSubFields(data map[string]interface{}) error {
	for _, field := range []string{"vitals", "prescription", "history"} {
		if err := util.SerializeSubField(data, field); err != nil {
			return err
		}
	}
	return nil
}

/*
* Validate inputs, stamp audit fields and generate the patient code
* Assign the next token for the registration department
* Save, cache and broadcast patient-registered to that department room
 */
func RegisterPatient(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.RequireFields(data, "name", "gender"); err != nil {
		return nil, err
	}
	if err := util.TrimIfExists(data, "phoneNo"); err != nil {
		log.Println("Error from trimIfExists:", err)
		return nil, err
	}

	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")
	if createdBy == "" {
		return nil, errors.New(util.MISSING_CREATOR_CODE)
	}

	department := util.DeptReception
	if raw, ok := data["department"].(string); ok && raw != "" {
		department = raw
	}
	if !util.IsValidDepartment(department) {
		return nil, errors.New(util.INVALID_DEPARTMENT)
	}

	if err := serializeSubFields(data); err != nil {
		return nil, err
	}

	seq, err := db.NextSequence(c, util.PatientCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return nil, err
	}
	code := util.FormatCode("PAT", seq)

	token, err := NextQueueToken(c, hospitalId, department)
	if err != nil {
		return nil, err
	}

	data["code"] = code
	data["hospitalId"] = hospitalId
	data["department"] = department
	data["token"] = token
	data["tokenDate"] = time.Now().Format(tokenDateLayout)
	data["age"] = util.ToInt(data["age"])
	data["isActive"] = true
	util.PrepareAudit(data, createdBy)

	coll := db.OpenCollections(util.PatientCollection)
	if _, err := db.CreateOne(c, coll, data); err != nil {
		log.Println("Error from createOne for patient:", err)
		return nil, err
	}
	if err := redis.SetCache(c, util.PatientKey+code, data); err != nil {
		log.Println("Failed caching new patient:", err)
	}

	socket.Emit(socket.Room(hospitalId, department), socket.EventPatientRegistered, map[string]interface{}{
		"patientId":  code,
		"name":       data["name"],
		"token":      token,
		"department": department,
	})

	return map[string]interface{}{"patientId": code, "token": token}, nil
}

func FetchPatientByCode(c *gin.Context, patientId string) (map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	key := util.PatientKey + patientId

	if cached, exists, err := redis.GetCache(c, key); exists && err == nil {
		if cached["hospitalId"] == hospitalId {
			return cached, nil
		}
	}

	coll := db.OpenCollections(util.PatientCollection)
	result := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": patientId, "hospitalId": hospitalId}, &result); err != nil {
		log.Println("Error from findOne for patient:", err)
		return nil, errors.New(util.PATIENT_NOT_FOUND)
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Failed caching patient:", err)
	}
	return result, nil
}

/*
* Dashboards fetch their queue with ?department= and today's date by
* default; ?all=true returns the full register
 */
func FetchAllPatients(c *gin.Context) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	filter := bson.M{"hospitalId": hospitalId}

	if dept := c.Query("department"); dept != "" {
		filter["department"] = dept
	}
	if c.Query("all") != "true" {
		filter["tokenDate"] = time.Now().Format(tokenDateLayout)
	}

	coll := db.OpenCollections(util.PatientCollection)
	opts := options.Find().SetSort(bson.M{"token": 1})
	patients, err := db.FindAll(c, coll, filter, opts)
	if err != nil {
		log.Println("Error from findAll for patients:", err)
		return nil, err
	}
	return patients, nil
}

// stripQueueFields removes the identity and queue placement fields from a
// plain patch. Moving a patient between departments goes through
// MovePatientQueue so it always gets a fresh token and a queue-moved
// broadcast.
func stripQueueFields(data map[string]interface{}) {
	for _, field := range []string{"code", "hospitalId", "department", "token", "tokenDate"} {
		delete(data, field)
	}
}

/*
* Serialize any sub field objects before writing, then broadcast
* prescription-updated to the pharmacy room when the prescription changed
 */
func UpdatePatientByCode(c *gin.Context, patientId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	stripQueueFields(data)

	if err := serializeSubFields(data); err != nil {
		return "", err
	}
	_, prescriptionChanged := data["prescription"]
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.PatientCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": patientId, "hospitalId": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for patient:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.PATIENT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.PatientKey+patientId); err != nil {
		log.Println("Failed invalidating patient cache:", err)
	}

	if prescriptionChanged {
		socket.Emit(socket.Room(hospitalId, util.DeptPharmacy), socket.EventPrescriptionUpdated, map[string]interface{}{
			"patientId": patientId,
		})
	}
	return "patient updated", nil
}

/*
* Move the patient to another department queue and assign a fresh token
* there. Both the old and the new department rooms get queue-moved so both
* dashboards refetch.
 */
func MovePatientQueue(c *gin.Context, patientId string, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.RequireFields(data, "department"); err != nil {
		return nil, err
	}
	department := data["department"].(string)
	if !util.IsValidDepartment(department) {
		return nil, errors.New(util.INVALID_DEPARTMENT)
	}

	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	patient, err := FetchPatientByCode(c, patientId)
	if err != nil {
		return nil, err
	}
	fromDept, _ := patient["department"].(string)

	token, err := NextQueueToken(c, hospitalId, department)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"department": department,
		"token":      token,
		"tokenDate":  time.Now().Format(tokenDateLayout),
		"updatedAt":  time.Now(),
		"updatedBy":  updatedBy,
	}
	if doctorId, ok := data["doctorId"].(string); ok && doctorId != "" {
		update["doctorId"] = doctorId
	}

	coll := db.OpenCollections(util.PatientCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": patientId, "hospitalId": hospitalId}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne for queue move:", err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, errors.New(util.PATIENT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.PatientKey+patientId); err != nil {
		log.Println("Failed invalidating patient cache:", err)
	}

	payload := map[string]interface{}{
		"patientId": patientId,
		"from":      fromDept,
		"to":        department,
		"token":     token,
	}
	for _, room := range queueMoveRooms(hospitalId, fromDept, department) {
		socket.Emit(room, socket.EventQueueMoved, payload)
	}

	return payload, nil
}

// queueMoveRooms lists the rooms that hear a queue move: the target
// department and, when the patient came from somewhere else, the source
// department, so both dashboards refetch their queues.
func queueMoveRooms(hospitalId, fromDept, toDept string) []string {
	rooms := []string{socket.Room(hospitalId, toDept)}
	if fromDept != "" && fromDept != toDept {
		rooms = append(rooms, socket.Room(hospitalId, fromDept))
	}
	return rooms
}

func DeletePatient(c *gin.Context, patientId string) (string, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.PatientCollection)
	result, err := db.DeleteOne(c, coll, bson.M{"code": patientId, "hospitalId": hospitalId})
	if err != nil {
		log.Println("Error from deleteOne for patient:", err)
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", errors.New(util.PATIENT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.PatientKey+patientId); err != nil {
		log.Println("Failed invalidating patient cache:", err)
	}
	return "patient deleted", nil
}
