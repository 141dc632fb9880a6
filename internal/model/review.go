package model

import "time"

const MaxReviewCommentLength = 1000

type Review struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	PlaceID   int       `json:"placeId" db:"place_id"`
	Rating    float64   `json:"rating" db:"rating"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateReviewRequest struct {
	PlaceID int      `json:"placeId" binding:"required,min=1"`
	Rating  *float64 `json:"rating" binding:"required,gte=0,lte=5"`
	Comment *string  `json:"comment" binding:"omitempty,max=1000"`
}

type UpdateReviewParams struct {
	Rating  *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Comment *string  `json:"comment" binding:"omitempty,max=1000"`
}

type ReviewFilter struct {
	PlaceID *int `form:"placeId"`
	UserID  *int `form:"userId"`
	Limit   int  `form:"limit"`
	Offset  int  `form:"offset"`
}

// PlaceRating is the aggregate rating of a place.
type PlaceRating struct {
	PlaceID       int     `json:"placeId"`
	AverageRating float64 `json:"averageRating"`
}
