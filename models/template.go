package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrescriptionTemplate is the per hospital layout config the PDF endpoint
// renders with. One document per hospital.
type PrescriptionTemplate struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	HeaderText string             `json:"headerText" bson:"headerText"`
	SubHeader  string             `json:"subHeader" bson:"subHeader"`
	FooterText string             `json:"footerText" bson:"footerText"`
	ShowVitals bool               `json:"showVitals" bson:"showVitals"`
	ShowToken  bool               `json:"showToken" bson:"showToken"`
	MarginX    float64            `json:"marginX" bson:"marginX"`
	MarginY    float64            `json:"marginY" bson:"marginY"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string             `json:"updatedBy" bson:"updatedBy"`
}
