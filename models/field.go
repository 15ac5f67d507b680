package models

import "time"

// Field statuses.
const (
	FieldStatusAvailable   = "available"
	FieldStatusMaintenance = "maintenance"
)

// Field is a bookable unit inside a sports complex.
type Field struct {
	ID          string    `bson:"id" json:"id"`
	ComplexID   string    `bson:"complex_id" json:"complexId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Type        string    `bson:"type" json:"type"` // e.g. "football", "tennis"
	Surface     string    `bson:"surface,omitempty" json:"surface,omitempty"`
	Price       float64   `bson:"price" json:"price"` // price per booking slot
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
