package service

import (
	"context"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
)

type PromotionService interface {
	List(ctx context.Context, filter model.PromotionFilter) ([]*model.Promotion, error)
	ListActive(ctx context.Context, placeID int, day model.Date) ([]*model.Promotion, error)
	Get(ctx context.Context, id int) (*model.Promotion, error)
	Create(ctx context.Context, caller model.Caller, req model.CreatePromotionRequest) (*model.Promotion, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdatePromotionParams) (*model.Promotion, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
}

type PromotionServiceImpl struct {
	repo   repository.PromotionRepository
	places repository.PlaceRepository
	access *AccessFilter
}

func NewPromotionService(repo repository.PromotionRepository, places repository.PlaceRepository) PromotionService {
	return &PromotionServiceImpl{repo: repo, places: places, access: NewAccessFilter(nil, places)}
}

func (s *PromotionServiceImpl) List(ctx context.Context, filter model.PromotionFilter) ([]*model.Promotion, error) {
	return s.repo.List(ctx, filter)
}

func (s *PromotionServiceImpl) ListActive(ctx context.Context, placeID int, day model.Date) ([]*model.Promotion, error) {
	if _, err := s.places.FindByID(ctx, placeID); err != nil {
		return nil, err
	}
	return s.repo.ListActiveByPlace(ctx, placeID, day)
}

func (s *PromotionServiceImpl) Get(ctx context.Context, id int) (*model.Promotion, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PromotionServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreatePromotionRequest) (*model.Promotion, error) {
	if req.DiscountPercent == nil || req.StartDate == nil || req.EndDate == nil {
		return nil, validationError("discountPercent, startDate and endDate are required")
	}
	if err := validatePromotion(*req.DiscountPercent, *req.StartDate, *req.EndDate); err != nil {
		return nil, err
	}
	if err := s.authorizePlace(ctx, caller, req.PlaceID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Promotion{
		PlaceID:         req.PlaceID,
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: *req.DiscountPercent,
		StartDate:       *req.StartDate,
		EndDate:         *req.EndDate,
	})
}

func (s *PromotionServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdatePromotionParams) (*model.Promotion, error) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizePlace(ctx, caller, promotion.PlaceID); err != nil {
		return nil, err
	}

	discount, start, end := promotion.DiscountPercent, promotion.StartDate, promotion.EndDate
	if params.DiscountPercent != nil {
		discount = *params.DiscountPercent
	}
	if params.StartDate != nil {
		start = *params.StartDate
	}
	if params.EndDate != nil {
		end = *params.EndDate
	}
	if err := validatePromotion(discount, start, end); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *PromotionServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizePlace(ctx, caller, promotion.PlaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorizePlace resolves the promoted place and checks the caller manages it.
func (s *PromotionServiceImpl) authorizePlace(ctx context.Context, caller model.Caller, placeID int) error {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return err
	}
	return s.access.AuthorizeListing(caller, place.ProviderID)
}

func validatePromotion(discount float64, start, end model.Date) error {
	if discount < 0 || discount > 100 {
		return validationError("discountPercent must be between 0 and 100")
	}
	if !end.After(start) {
		return validationError("endDate must be after startDate")
	}
	return nil
}
