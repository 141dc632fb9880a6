package repository

import (
	"context"
	"fmt"
	"time"

	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error)
	List(ctx context.Context, filter model.PromotionFilter) ([]*model.Promotion, error)
	// ListActiveByPlace returns promotions of the place whose window contains day.
	ListActiveByPlace(ctx context.Context, placeID int, day model.Date) ([]*model.Promotion, error)
	FindByID(ctx context.Context, id int) (*model.Promotion, error)
	Update(ctx context.Context, id int, params model.UpdatePromotionParams) (*model.Promotion, error)
	Delete(ctx context.Context, id int) error
}

type PromotionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) PromotionRepository {
	return &PromotionRepositoryImpl{
		pool: pool,
	}
}

const promotionColumns = `id, place_id, title, description, discount_percent, start_date, end_date, created_at, updated_at`

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	var promotion model.Promotion
	var startDate, endDate time.Time
	err := row.Scan(
		&promotion.ID,
		&promotion.PlaceID,
		&promotion.Title,
		&promotion.Description,
		&promotion.DiscountPercent,
		&startDate,
		&endDate,
		&promotion.CreatedAt,
		&promotion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	promotion.StartDate = model.NewDate(startDate)
	promotion.EndDate = model.NewDate(endDate)
	return &promotion, nil
}

func (r *PromotionRepositoryImpl) Create(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error) {
	query := `
		INSERT INTO promotions (place_id, title, description, discount_percent, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + promotionColumns

	created, err := scanPromotion(r.pool.QueryRow(ctx, query,
		promotion.PlaceID, promotion.Title, promotion.Description, promotion.DiscountPercent,
		promotion.StartDate.Time, promotion.EndDate.Time,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPromotionNotFound)
	}
	return created, nil
}

func (r *PromotionRepositoryImpl) List(ctx context.Context, filter model.PromotionFilter) ([]*model.Promotion, error) {
	var where whereBuilder
	if filter.PlaceID != nil {
		where.add("place_id = ?", *filter.PlaceID)
	}
	if filter.ActiveOn != nil {
		where.add("start_date <= ?::date AND end_date >= ?::date", filter.ActiveOn.Time)
	}
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM promotions
		%s
		ORDER BY start_date DESC, id DESC
		%s
	`, promotionColumns, where.clause(), page)

	return r.queryPromotions(ctx, query, where.args...)
}

func (r *PromotionRepositoryImpl) ListActiveByPlace(ctx context.Context, placeID int, day model.Date) ([]*model.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE place_id = $1
		AND start_date <= $2::date
		AND end_date >= $2::date
		ORDER BY discount_percent DESC, id ASC
	`
	return r.queryPromotions(ctx, query, placeID, day.Time)
}

func (r *PromotionRepositoryImpl) queryPromotions(ctx context.Context, query string, args ...any) ([]*model.Promotion, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := make([]*model.Promotion, 0)
	for rows.Next() {
		promotion, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, promotion)
	}
	return promotions, rows.Err()
}

func (r *PromotionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	promotion, err := scanPromotion(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPromotionNotFound)
	}
	return promotion, nil
}

func (r *PromotionRepositoryImpl) Update(ctx context.Context, id int, params model.UpdatePromotionParams) (*model.Promotion, error) {
	var b setBuilder
	if params.Title != nil {
		b.add("title", *params.Title)
	}
	if params.Description != nil {
		b.add("description", *params.Description)
	}
	if params.DiscountPercent != nil {
		b.add("discount_percent", *params.DiscountPercent)
	}
	if params.StartDate != nil {
		b.add("start_date", params.StartDate.Time)
	}
	if params.EndDate != nil {
		b.add("end_date", params.EndDate.Time)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("promotions", id, promotionColumns)
	promotion, err := scanPromotion(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPromotionNotFound)
	}
	return promotion, nil
}

func (r *PromotionRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrPromotionNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPromotionNotFound
	}

	return nil
}
