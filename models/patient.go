package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is a per-visit record that moves through the department queues.
// Vitals, Prescription and History are stored as JSON serialized strings on
// the document itself; the dashboards parse them client side.
type Patient struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code"`
	HospitalId   string             `json:"hospitalId" bson:"hospitalId"`
	Name         string             `json:"name" bson:"name"`
	Age          int                `json:"age" bson:"age"`
	Gender       string             `json:"gender" bson:"gender"`
	PhoneNo      string             `json:"phoneNo" bson:"phoneNo"`
	Address      string             `json:"address" bson:"address"`
	Department   string             `json:"department" bson:"department"`
	Token        int                `json:"token" bson:"token"`
	TokenDate    string             `json:"tokenDate" bson:"tokenDate"`
	DoctorId     string             `json:"doctorId" bson:"doctorId"`
	Vitals       string             `json:"vitals" bson:"vitals"`
	Prescription string             `json:"prescription" bson:"prescription"`
	History      string             `json:"history" bson:"history"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy    string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
}

// QueueCounter backs the per department daily token sequence.
type QueueCounter struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	Department string             `json:"department" bson:"department"`
	Date       string             `json:"date" bson:"date"`
	Seq        int                `json:"seq" bson:"seq"`
}
