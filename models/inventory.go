package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem is a stock row. Pharmacy stock and lab stock share the
// shape and live in separate collections.
type InventoryItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code"`
	HospitalId   string             `json:"hospitalId" bson:"hospitalId"`
	Name         string             `json:"name" bson:"name"`
	Category     string             `json:"category" bson:"category"`
	Quantity     int                `json:"quantity" bson:"quantity"`
	Unit         string             `json:"unit" bson:"unit"`
	ReorderLevel int                `json:"reorderLevel" bson:"reorderLevel"`
	Price        float64            `json:"price" bson:"price"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy    string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
}
