package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabTest tracks one requested diagnostic test. Status and SampleStatus are
// plain strings written from client input; there is no server side
// transition table.
type LabTest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code"`
	HospitalId   string             `json:"hospitalId" bson:"hospitalId"`
	PatientId    string             `json:"patientId" bson:"patientId"`
	PatientName  string             `json:"patientName" bson:"patientName"`
	TestTypeId   string             `json:"testTypeId" bson:"testTypeId"`
	TestName     string             `json:"testName" bson:"testName"`
	Status       string             `json:"status" bson:"status"`
	SampleStatus string             `json:"sampleStatus" bson:"sampleStatus"`
	Priority     string             `json:"priority" bson:"priority"`
	Notes        string             `json:"notes" bson:"notes"`
	RequestedBy  string             `json:"requestedBy" bson:"requestedBy"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy    string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
}

// LabResult is one recorded parameter value for a test.
type LabResult struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	TestId     string             `json:"testId" bson:"testId"`
	Parameter  string             `json:"parameter" bson:"parameter"`
	Value      string             `json:"value" bson:"value"`
	Unit       string             `json:"unit" bson:"unit"`
	RefRange   string             `json:"refRange" bson:"refRange"`
	Flag       string             `json:"flag" bson:"flag"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string             `json:"updatedBy" bson:"updatedBy"`
}

type TestParameter struct {
	Name     string `json:"name" bson:"name"`
	Unit     string `json:"unit" bson:"unit"`
	RefRange string `json:"refRange" bson:"refRange"`
}

// LabTestType is the per hospital catalog entry a test is ordered from.
type LabTestType struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	Name       string             `json:"name" bson:"name"`
	Price      float64            `json:"price" bson:"price"`
	Parameters []TestParameter    `json:"parameters" bson:"parameters"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string             `json:"updatedBy" bson:"updatedBy"`
}
