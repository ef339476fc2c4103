package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a staff login scoped to a hospital. Username is unique within a
// hospital via a compound index, not across hospitals.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	Username   string             `json:"username" bson:"username"`
	Password   string             `json:"password,omitempty" bson:"password,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Role       string             `json:"role" bson:"role"`
	PhoneNo    string             `json:"phoneNo" bson:"phoneNo"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string             `json:"updatedBy" bson:"updatedBy"`
}
