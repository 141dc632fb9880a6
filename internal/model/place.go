package model

import (
	"encoding/json"
	"time"
)

// DefaultSearchRadiusKm is applied to proximity searches without a radius.
const DefaultSearchRadiusKm = 10.0

type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Region    string   `json:"region,omitempty"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
}

type Place struct {
	ID           int            `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Type         string         `json:"type" db:"type"`
	Description  *string        `json:"description,omitempty" db:"description"`
	Location     Location       `json:"location" db:"location"`
	Images       []string       `json:"images" db:"images"`
	OpeningHours map[string]any `json:"openingHours" db:"opening_hours"`
	// EntranceFee is the per-category fee table as stored. It is kept raw so
	// that malformed tables survive reads and degrade at pricing time.
	EntranceFee   json.RawMessage `json:"entranceFee" db:"entrance_fee"`
	ProviderID    *int            `json:"providerId" db:"provider_id"`
	AverageRating float64         `json:"averageRating" db:"average_rating"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`

	// Distance in kilometres, set by proximity searches only.
	Distance *float64 `json:"distance,omitempty" db:"-"`
}

func (p *Place) IsOwnedBy(providerID int) bool {
	return p.ProviderID != nil && *p.ProviderID == providerID
}

type CreatePlaceRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Type         string          `json:"type" binding:"required,max=100"`
	Description  *string         `json:"description"`
	Location     Location        `json:"location"`
	Images       []string        `json:"images"`
	OpeningHours map[string]any  `json:"openingHours"`
	EntranceFee  json.RawMessage `json:"entranceFee"`
	// ProviderID is honoured for admins only.
	ProviderID *int `json:"providerId"`
}

type UpdatePlaceParams struct {
	Name         *string         `json:"name" binding:"omitempty,max=255"`
	Type         *string         `json:"type" binding:"omitempty,max=100"`
	Description  *string         `json:"description"`
	Location     *Location       `json:"location"`
	Images       *[]string       `json:"images"`
	OpeningHours *map[string]any `json:"openingHours"`
	EntranceFee  json.RawMessage `json:"entranceFee"`
	ProviderID   *int            `json:"providerId"`
}

type PlaceFilter struct {
	Type       string `form:"type"`
	Name       string `form:"name"`
	Region     string `form:"region"`
	ProviderID *int   `form:"providerId"`

	// Proximity search is applied when both Latitude and Longitude are set.
	Latitude  *float64 `form:"lat"`
	Longitude *float64 `form:"lng"`
	RadiusKm  float64  `form:"radius"`

	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (f PlaceFilter) IsProximity() bool {
	return f.Latitude != nil && f.Longitude != nil
}
