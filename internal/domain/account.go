package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRestaurant Role = "restaurant"
	RoleDonor      Role = "donor"
	RoleNGO        Role = "ngo"
)

// Account is any named actor in the system. Name is unique across all roles.
// Capacity fields are only meaningful for NGOs: Capacity is the remaining
// units the NGO can still receive, BaselineCapacity the value both counters
// were last reset to (used for utilization reporting).
type Account struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	Capacity         int       `json:"capacity"`
	BaselineCapacity int       `json:"baseline_capacity"`
	Phone            string    `json:"phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
