package service

import (
	"context"
	"unicode/utf8"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/queue"
	"tourism-reservation/internal/repository"
	"tourism-reservation/pkg/logger"

	"go.uber.org/zap"
)

type ReviewService interface {
	List(ctx context.Context, filter model.ReviewFilter) ([]*model.Review, error)
	Get(ctx context.Context, id int) (*model.Review, error)
	Create(ctx context.Context, caller model.Caller, req model.CreateReviewRequest) (*model.Review, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdateReviewParams) (*model.Review, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
}

type ReviewServiceImpl struct {
	repo   repository.ReviewRepository
	places repository.PlaceRepository
	access *AccessFilter
	queue  queue.RatingQueue
}

func NewReviewService(repo repository.ReviewRepository, places repository.PlaceRepository, ratingQueue queue.RatingQueue) ReviewService {
	return &ReviewServiceImpl{
		repo:   repo,
		places: places,
		access: NewAccessFilter(nil, places),
		queue:  ratingQueue,
	}
}

func (s *ReviewServiceImpl) List(ctx context.Context, filter model.ReviewFilter) ([]*model.Review, error) {
	return s.repo.List(ctx, filter)
}

func (s *ReviewServiceImpl) Get(ctx context.Context, id int) (*model.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreateReviewRequest) (*model.Review, error) {
	if req.Rating == nil {
		return nil, validationError("rating is required")
	}
	if err := validateReview(*req.Rating, req.Comment); err != nil {
		return nil, err
	}
	if _, err := s.places.FindByID(ctx, req.PlaceID); err != nil {
		return nil, err
	}

	review, err := s.repo.Create(ctx, &model.Review{
		UserID:  caller.ID,
		PlaceID: req.PlaceID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, err
	}

	s.requestRatingRefresh(ctx, review.PlaceID)
	return review, nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdateReviewParams) (*model.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeReview(caller, review); err != nil {
		return nil, err
	}
	if params.Rating == nil && params.Comment == nil {
		return nil, validationError("no updatable fields provided")
	}

	rating := review.Rating
	if params.Rating != nil {
		rating = *params.Rating
	}
	if err := validateReview(rating, params.Comment); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	if params.Rating != nil {
		s.requestRatingRefresh(ctx, updated.PlaceID)
	}
	return updated, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.AuthorizeReview(caller, review); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.requestRatingRefresh(ctx, review.PlaceID)
	return nil
}

// requestRatingRefresh hands the recomputation to the rating worker. A lost
// request leaves the stored average stale until the next review write.
func (s *ReviewServiceImpl) requestRatingRefresh(ctx context.Context, placeID int) {
	if err := s.queue.PublishRatingRefresh(ctx, placeID); err != nil {
		logger.WithComponent("review").Warn("Failed to enqueue rating refresh",
			zap.Int("place_id", placeID),
			zap.Error(err),
		)
	}
}

func validateReview(rating float64, comment *string) error {
	if rating < 0 || rating > 5 {
		return validationError("rating must be between 0 and 5")
	}
	if comment != nil && utf8.RuneCountInString(*comment) > model.MaxReviewCommentLength {
		return validationError("comment must be at most %d characters", model.MaxReviewCommentLength)
	}
	return nil
}
