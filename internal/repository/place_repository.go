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

// EarthRadiusKm is the mean earth radius used by proximity searches.
const EarthRadiusKm = 6371.0

const defaultPopularLimit = 10

type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) (*model.Place, error)
	List(ctx context.Context, filter model.PlaceFilter) ([]*model.Place, error)
	Popular(ctx context.Context, limit int) ([]*model.Place, error)
	FindByID(ctx context.Context, id int) (*model.Place, error)
	Update(ctx context.Context, id int, params model.UpdatePlaceParams) (*model.Place, error)
	Delete(ctx context.Context, id int) error
	// RefreshAverageRating recomputes the stored mean of the place's reviews.
	RefreshAverageRating(ctx context.Context, id int) (float64, error)

	// Transaction methods
	FindByIDForUpdate(ctx context.Context, q Querier, id int) (*model.Place, error)
}

type PlaceRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) PlaceRepository {
	return &PlaceRepositoryImpl{
		pool: pool,
	}
}

const placeColumns = `id, name, type, description, location, images, opening_hours, entrance_fee, provider_id, average_rating, created_at, updated_at`

func scanPlace(row pgx.Row, extra ...any) (*model.Place, error) {
	var place model.Place
	var entranceFee []byte
	dest := []any{
		&place.ID,
		&place.Name,
		&place.Type,
		&place.Description,
		&place.Location,
		&place.Images,
		&place.OpeningHours,
		&entranceFee,
		&place.ProviderID,
		&place.AverageRating,
		&place.CreatedAt,
		&place.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	place.EntranceFee = entranceFee
	return &place, nil
}

func (r *PlaceRepositoryImpl) Create(ctx context.Context, place *model.Place) (*model.Place, error) {
	query := `
		INSERT INTO places (name, type, description, location, images, opening_hours, entrance_fee, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + placeColumns

	images := place.Images
	if images == nil {
		images = []string{}
	}
	openingHours := place.OpeningHours
	if openingHours == nil {
		openingHours = map[string]any{}
	}

	created, err := scanPlace(r.pool.QueryRow(ctx, query,
		place.Name, place.Type, place.Description, place.Location, images, openingHours,
		jsonArg(place.EntranceFee, "{}"), place.ProviderID,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPlaceNotFound)
	}
	return created, nil
}

// List applies the filter. With coordinates it becomes a proximity search:
// great-circle distance below the radius, nearest first.
func (r *PlaceRepositoryImpl) List(ctx context.Context, filter model.PlaceFilter) ([]*model.Place, error) {
	var where whereBuilder
	if filter.Type != "" {
		where.add("type = ?", filter.Type)
	}
	if filter.Name != "" {
		where.add("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Region != "" {
		where.add("location->>'region' = ?", filter.Region)
	}
	if filter.ProviderID != nil {
		where.add("provider_id = ?", *filter.ProviderID)
	}

	if !filter.IsProximity() {
		page := where.page(filter.Limit, filter.Offset)
		query := fmt.Sprintf(`
			SELECT %s
			FROM places
			%s
			ORDER BY created_at DESC
			%s
		`, placeColumns, where.clause(), page)
		return r.queryPlaces(ctx, query, false, where.args...)
	}

	radius := filter.RadiusKm
	if radius <= 0 {
		radius = model.DefaultSearchRadiusKm
	}
	where.addRaw("location->>'latitude' IS NOT NULL AND location->>'longitude' IS NOT NULL")

	// the haversine expression reuses the lat/lng placeholders
	where.args = append(where.args, *filter.Latitude, *filter.Longitude)
	latPos, lngPos := len(where.args)-1, len(where.args)
	where.args = append(where.args, radius)
	radiusPos := len(where.args)
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT *
		FROM (
			SELECT %s,
				%f * acos(LEAST(1.0, GREATEST(-1.0,
					cos(radians($%d)) * cos(radians((location->>'latitude')::float8))
					* cos(radians((location->>'longitude')::float8) - radians($%d))
					+ sin(radians($%d)) * sin(radians((location->>'latitude')::float8))
				))) AS distance
			FROM places
			%s
		) AS nearby
		WHERE distance < $%d
		ORDER BY distance ASC
		%s
	`, placeColumns, EarthRadiusKm, latPos, lngPos, latPos, where.clause(), radiusPos, page)

	return r.queryPlaces(ctx, query, true, where.args...)
}

func (r *PlaceRepositoryImpl) Popular(ctx context.Context, limit int) ([]*model.Place, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	query := `
		SELECT ` + placeColumns + `
		FROM places
		ORDER BY average_rating DESC, id ASC
		LIMIT $1
	`
	return r.queryPlaces(ctx, query, false, limit)
}

func (r *PlaceRepositoryImpl) queryPlaces(ctx context.Context, query string, withDistance bool, args ...any) ([]*model.Place, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := make([]*model.Place, 0)
	for rows.Next() {
		var place *model.Place
		if withDistance {
			var distance float64
			place, err = scanPlace(rows, &distance)
			if err == nil {
				place.Distance = &distance
			}
		} else {
			place, err = scanPlace(rows)
		}
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}
	return places, rows.Err()
}

func (r *PlaceRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Place, error) {
	return r.findByID(ctx, r.pool, id, false)
}

func (r *PlaceRepositoryImpl) FindByIDForUpdate(ctx context.Context, q Querier, id int) (*model.Place, error) {
	return r.findByID(ctx, q, id, true)
}

func (r *PlaceRepositoryImpl) findByID(ctx context.Context, q Querier, id int, lock bool) (*model.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	place, err := scanPlace(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPlaceNotFound)
	}
	return place, nil
}

func (r *PlaceRepositoryImpl) Update(ctx context.Context, id int, params model.UpdatePlaceParams) (*model.Place, error) {
	var b setBuilder
	if params.Name != nil {
		b.add("name", *params.Name)
	}
	if params.Type != nil {
		b.add("type", *params.Type)
	}
	if params.Description != nil {
		b.add("description", *params.Description)
	}
	if params.Location != nil {
		b.add("location", *params.Location)
	}
	if params.Images != nil {
		b.add("images", *params.Images)
	}
	if params.OpeningHours != nil {
		b.add("opening_hours", *params.OpeningHours)
	}
	if params.EntranceFee != nil {
		b.add("entrance_fee", jsonArg(params.EntranceFee, "{}"))
	}
	if params.ProviderID != nil {
		b.add("provider_id", *params.ProviderID)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("places", id, placeColumns)
	place, err := scanPlace(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrPlaceNotFound)
	}
	return place, nil
}

func (r *PlaceRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrPlaceNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPlaceNotFound
	}

	return nil
}

func (r *PlaceRepositoryImpl) RefreshAverageRating(ctx context.Context, id int) (float64, error) {
	query := `
		UPDATE places
		SET average_rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE place_id = $1), 0),
			updated_at = $2
		WHERE id = $1
		RETURNING average_rating
	`

	var rating float64
	err := r.pool.QueryRow(ctx, query, id, time.Now().UTC()).Scan(&rating)
	if err != nil {
		return 0, translateError(err, apperrors.ErrPlaceNotFound)
	}
	return rating, nil
}
