package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vital struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	HospitalId  string             `json:"hospitalId" bson:"hospitalId"`
	PatientId   string             `json:"patientId" bson:"patientId"`
	Temperature string             `json:"temperature" bson:"temperature"`
	Pulse       string             `json:"pulse" bson:"pulse"`
	BP          string             `json:"bp" bson:"bp"`
	SpO2        string             `json:"spo2" bson:"spo2"`
	Weight      string             `json:"weight" bson:"weight"`
	Height      string             `json:"height" bson:"height"`
	RecordedBy  string             `json:"recordedBy" bson:"recordedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}
