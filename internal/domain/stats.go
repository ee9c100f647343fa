package domain

import "github.com/google/uuid"

type HomeStats struct {
	MealsCollected  int64 `json:"meals_collected"`
	NGOCount        int64 `json:"ngo_count"`
	RestaurantCount int64 `json:"restaurant_count"`
	DonorCount      int64 `json:"donor_count"`
}

type DonationSummary struct {
	ID          uuid.UUID      `json:"id"`
	DonorName   string         `json:"donor_name"`
	FoodName    string         `json:"food_name"`
	Quantity    int            `json:"quantity"`
	ExpiryHours int            `json:"expiry_hours"`
	DistanceKM  float64        `json:"distance_km"`
	Status      DonationStatus `json:"status"`
}

type NGODashboard struct {
	NGOName          string            `json:"ngo_name"`
	Capacity         int               `json:"capacity"`
	BaselineCapacity int               `json:"baseline_capacity"`
	UtilizationPct   float64           `json:"utilization_pct"`
	TotalDonations   int64             `json:"total_donations"`
	TotalAssigned    int64             `json:"total_assigned"`
	TotalCollected   int64             `json:"total_collected"`
	Donations        []DonationSummary `json:"donations"`
}
