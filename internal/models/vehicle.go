package models

import "github.com/google/uuid"

// Vehicle is a registered vehicle of the user.
type Vehicle struct {
	ID    uuid.UUID `json:"id"`
	Make  string    `json:"make"  validate:"required"`
	Model string    `json:"model" validate:"required"`
	Year  string    `json:"year"  validate:"required,numeric,len=4"`
	Trim  string    `json:"trim"`
	VIN   string    `json:"vin"   validate:"omitempty,alphanum,max=17"`
}
