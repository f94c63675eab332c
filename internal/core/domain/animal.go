package domain

import (
	"errors"
	"time"
)

var ErrAnimalNotFound = errors.New("animal not found")
var ErrInvalidAnimal = errors.New("invalid animal record")

// Animal is the core listing aggregate: a registered animal record.
// ID is assigned on creation and immutable afterwards.
type Animal struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description" bson:"description"`
	Price           float64   `json:"price,omitempty" bson:"price,omitempty"`
	AcquisitionDate string    `json:"acquisition_date,omitempty" bson:"acquisition_date,omitempty"`
	PhotoURL        string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Deactivated     bool      `json:"deactivated" bson:"deactivated"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// Validate checks the fields required before an animal may be persisted.
func (a *Animal) Validate() error {
	if a.Name == "" || a.Description == "" || a.PhotoURL == "" {
		return ErrInvalidAnimal
	}
	return nil
}

// AnimalCategory is a coarse classification entry served through the
// metadata endpoint (e.g. "dog", "cat").
type AnimalCategory struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// AnimalSubcategory refines a category (e.g. "shiba", "ragdoll").
type AnimalSubcategory struct {
	ID         string `json:"id" bson:"_id"`
	CategoryID string `json:"category_id" bson:"category_id"`
	Name       string `json:"name" bson:"name"`
}
