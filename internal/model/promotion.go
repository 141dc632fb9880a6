package model

import "time"

type Promotion struct {
	ID              int       `json:"id" db:"id"`
	PlaceID         int       `json:"placeId" db:"place_id"`
	Title           string    `json:"title" db:"title"`
	Description     *string   `json:"description,omitempty" db:"description"`
	DiscountPercent float64   `json:"discountPercent" db:"discount_percent"`
	StartDate       Date      `json:"startDate" db:"start_date"`
	EndDate         Date      `json:"endDate" db:"end_date"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

type CreatePromotionRequest struct {
	PlaceID         int      `json:"placeId" binding:"required,min=1"`
	Title           string   `json:"title" binding:"required,max=255"`
	Description     *string  `json:"description"`
	DiscountPercent *float64 `json:"discountPercent" binding:"required,gte=0,lte=100"`
	StartDate       *Date    `json:"startDate" binding:"required"`
	EndDate         *Date    `json:"endDate" binding:"required"`
}

type UpdatePromotionParams struct {
	Title           *string  `json:"title" binding:"omitempty,max=255"`
	Description     *string  `json:"description"`
	DiscountPercent *float64 `json:"discountPercent" binding:"omitempty,gte=0,lte=100"`
	StartDate       *Date    `json:"startDate"`
	EndDate         *Date    `json:"endDate"`
}

type PromotionFilter struct {
	PlaceID *int `form:"placeId"`
	// ActiveOn keeps promotions whose window contains the day.
	ActiveOn *Date `form:"-"`
	Limit    int   `form:"limit"`
	Offset   int   `form:"offset"`
}
