package service

import (
	"bytes"
	"context"
	"encoding/json"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	"tourism-reservation/pkg/logger"

	"go.uber.org/zap"
)

type PlaceService interface {
	List(ctx context.Context, filter model.PlaceFilter) ([]*model.Place, error)
	Popular(ctx context.Context, limit int) ([]*model.Place, error)
	Get(ctx context.Context, id int) (*model.Place, error)
	Rating(ctx context.Context, id int) (*model.PlaceRating, error)
	Create(ctx context.Context, caller model.Caller, req model.CreatePlaceRequest) (*model.Place, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdatePlaceParams) (*model.Place, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
	// RefreshRating stores the current mean review rating on the place.
	RefreshRating(ctx context.Context, placeID int) error
}

type PlaceServiceImpl struct {
	repo    repository.PlaceRepository
	reviews repository.ReviewRepository
	access  *AccessFilter
}

func NewPlaceService(repo repository.PlaceRepository, reviews repository.ReviewRepository, events repository.EventRepository) PlaceService {
	return &PlaceServiceImpl{
		repo:    repo,
		reviews: reviews,
		access:  NewAccessFilter(events, repo),
	}
}

func (s *PlaceServiceImpl) List(ctx context.Context, filter model.PlaceFilter) ([]*model.Place, error) {
	if filter.Latitude != nil || filter.Longitude != nil {
		if !filter.IsProximity() {
			return nil, validationError("lat and lng must be provided together")
		}
		if err := validateCoordinates(filter.Latitude, filter.Longitude); err != nil {
			return nil, err
		}
		if filter.RadiusKm < 0 {
			return nil, validationError("radius must be positive")
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *PlaceServiceImpl) Popular(ctx context.Context, limit int) ([]*model.Place, error) {
	return s.repo.Popular(ctx, limit)
}

func (s *PlaceServiceImpl) Get(ctx context.Context, id int) (*model.Place, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlaceServiceImpl) Rating(ctx context.Context, id int) (*model.PlaceRating, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	average, err := s.reviews.AverageRatingForPlace(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.PlaceRating{PlaceID: id, AverageRating: average}, nil
}

func (s *PlaceServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreatePlaceRequest) (*model.Place, error) {
	if err := s.access.AuthorizeNewListing(caller); err != nil {
		return nil, err
	}
	if err := validateLocation(req.Location); err != nil {
		return nil, err
	}
	if err := validateFeeTable(req.EntranceFee); err != nil {
		return nil, err
	}

	place := &model.Place{
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		Location:     req.Location,
		Images:       req.Images,
		OpeningHours: req.OpeningHours,
		EntranceFee:  req.EntranceFee,
		ProviderID:   listingOwner(caller, req.ProviderID),
	}
	return s.repo.Create(ctx, place)
}

func (s *PlaceServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdatePlaceParams) (*model.Place, error) {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeListing(caller, place.ProviderID); err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		params.ProviderID = nil
	}

	if params.Location != nil {
		if err := validateLocation(*params.Location); err != nil {
			return nil, err
		}
	}
	if err := validateFeeTable(params.EntranceFee); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *PlaceServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.AuthorizeListing(caller, place.ProviderID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PlaceServiceImpl) RefreshRating(ctx context.Context, placeID int) error {
	average, err := s.repo.RefreshAverageRating(ctx, placeID)
	if err != nil {
		return err
	}
	logger.WithComponent("place").Debug("Average rating refreshed",
		zap.Int("place_id", placeID),
		zap.Float64("average_rating", average),
	)
	return nil
}

// listingOwner forces providers to own what they create. Admins may assign
// any provider or none.
func listingOwner(caller model.Caller, requested *int) *int {
	if caller.IsAdmin() {
		return requested
	}
	id := caller.ID
	return &id
}

func validateLocation(location model.Location) error {
	if location.Latitude == nil && location.Longitude == nil {
		return nil
	}
	if location.Latitude == nil || location.Longitude == nil {
		return validationError("location needs both latitude and longitude")
	}
	return validateCoordinates(location.Latitude, location.Longitude)
}

func validateCoordinates(lat, lng *float64) error {
	if *lat < -90 || *lat > 90 {
		return validationError("latitude must be between -90 and 90")
	}
	if *lng < -180 || *lng > 180 {
		return validationError("longitude must be between -180 and 180")
	}
	return nil
}

// validateFeeTable accepts an absent table or a JSON object.
func validateFeeTable(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var table map[string]any
	if err := json.Unmarshal(trimmed, &table); err != nil {
		return validationError("entranceFee must be an object of fees by category")
	}
	return nil
}
