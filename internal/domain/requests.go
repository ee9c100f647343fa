package domain

import "github.com/google/uuid"

type RegisterAccountRequest struct {
	Name     string  `json:"name" validate:"required"`
	Role     Role    `json:"role" validate:"required,role"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	Capacity int     `json:"capacity" validate:"min=0"`
	Phone    string  `json:"phone"`
}

type CreateDonationRequest struct {
	DonorName   string `json:"donor_name" validate:"required"`
	FoodName    string `json:"food_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	ExpiryHours int    `json:"expiry_hours" validate:"required,min=1"`
}

type CollectDonationRequest struct {
	NGOName string `json:"ngo_name" validate:"required"`
}

type ResetCapacityRequest struct {
	Capacity int `json:"capacity" validate:"min=0"`
}

// MatchResult is what the caller gets back for a successful donation.
type MatchResult struct {
	DonationID  uuid.UUID `json:"donation_id"`
	AssignedNGO string    `json:"assigned_ngo"`
	DistanceKM  float64   `json:"distance_km"`
}
