package domain

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationAssigned  DonationStatus = "assigned"
	DonationCollected DonationStatus = "collected"
)

// Donation is one surplus-food offer, created already assigned to an NGO.
// Everything except Status/CollectedAt is immutable after creation; Status
// transitions exactly once, assigned -> collected.
type Donation struct {
	ID            uuid.UUID      `json:"id"`
	DonorID       uuid.UUID      `json:"donor_id"`
	FoodName      string         `json:"food_name"`
	Quantity      int            `json:"quantity"`
	ExpiryHours   int            `json:"expiry_hours"`
	AssignedNGOID uuid.UUID      `json:"assigned_ngo_id"`
	DistanceKM    float64        `json:"distance_km"`
	Status        DonationStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	CollectedAt   *time.Time     `json:"collected_at,omitempty"`
}
