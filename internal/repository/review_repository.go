package repository

import (
	"context"
	"fmt"

	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	List(ctx context.Context, filter model.ReviewFilter) ([]*model.Review, error)
	FindByID(ctx context.Context, id int) (*model.Review, error)
	Update(ctx context.Context, id int, params model.UpdateReviewParams) (*model.Review, error)
	Delete(ctx context.Context, id int) error
	// AverageRatingForPlace is the mean rating of the place's reviews, 0 when
	// there are none.
	AverageRatingForPlace(ctx context.Context, placeID int) (float64, error)
}

type ReviewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &ReviewRepositoryImpl{
		pool: pool,
	}
}

const reviewColumns = `id, user_id, place_id, rating, comment, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var review model.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.PlaceID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
		INSERT INTO reviews (user_id, place_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns

	created, err := scanReview(r.pool.QueryRow(ctx, query,
		review.UserID, review.PlaceID, review.Rating, review.Comment,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReviewNotFound)
	}
	return created, nil
}

func (r *ReviewRepositoryImpl) List(ctx context.Context, filter model.ReviewFilter) ([]*model.Review, error) {
	var where whereBuilder
	if filter.PlaceID != nil {
		where.add("place_id = ?", *filter.PlaceID)
	}
	if filter.UserID != nil {
		where.add("user_id = ?", *filter.UserID)
	}
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		%s
		ORDER BY created_at DESC
		%s
	`, reviewColumns, where.clause(), page)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReviewNotFound)
	}
	return review, nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateReviewParams) (*model.Review, error) {
	var b setBuilder
	if params.Rating != nil {
		b.add("rating", *params.Rating)
	}
	if params.Comment != nil {
		b.add("comment", *params.Comment)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("reviews", id, reviewColumns)
	review, err := scanReview(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReviewNotFound)
	}
	return review, nil
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrReviewNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

func (r *ReviewRepositoryImpl) AverageRatingForPlace(ctx context.Context, placeID int) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE place_id = $1`

	var average float64
	if err := r.pool.QueryRow(ctx, query, placeID).Scan(&average); err != nil {
		return 0, err
	}
	return average, nil
}
