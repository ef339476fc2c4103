package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hospital is the tenant. Every other record carries its Code as hospitalId.
type Hospital struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	Name        string             `json:"name" bson:"name"`
	Address     string             `json:"address" bson:"address"`
	PhoneNo     string             `json:"phoneNo" bson:"phoneNo"`
	Mail        string             `json:"mail" bson:"mail"`
	Departments []string           `json:"departments" bson:"departments"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}
