package domain

import "time"

// NotificationPayload is what gets queued for the matched NGO after a
// donation commits. Delivery is best-effort and never affects the donation.
type NotificationPayload struct {
	NGOPhone    string    `json:"ngo_phone"`
	NGOName     string    `json:"ngo_name"`
	FoodName    string    `json:"food_name"`
	Quantity    int       `json:"quantity"`
	ExpiryHours int       `json:"expiry_hours"`
	DonorName   string    `json:"donor_name"`
	DistanceKM  float64   `json:"distance_km"`
	CreatedAt   time.Time `json:"created_at"`
}
