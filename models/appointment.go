package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	HospitalId  string             `json:"hospitalId" bson:"hospitalId"`
	PatientId   string             `json:"patientId" bson:"patientId"`
	PatientName string             `json:"patientName" bson:"patientName"`
	DoctorId    string             `json:"doctorId" bson:"doctorId"`
	Slot        time.Time          `json:"slot" bson:"slot"`
	Status      string             `json:"status" bson:"status"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}
