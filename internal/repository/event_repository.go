package repository

import (
	"context"
	"fmt"

	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindByIDForUpdate(ctx context.Context, q Querier, id int) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, title, description, location, organizer, start_date, end_date, capacity, ticket_price, images, provider_id, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Organizer,
		&event.StartDate,
		&event.EndDate,
		&event.Capacity,
		&event.TicketPrice,
		&event.Images,
		&event.ProviderID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (title, description, location, organizer, start_date, end_date, capacity, ticket_price, images, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns

	images := event.Images
	if images == nil {
		images = []string{}
	}

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Title, event.Description, event.Location, event.Organizer,
		event.StartDate, event.EndDate, event.Capacity, event.TicketPrice,
		images, event.ProviderID,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrEventNotFound)
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	var where whereBuilder
	if filter.ProviderID != nil {
		where.add("provider_id = ?", *filter.ProviderID)
	}
	if filter.Search != "" {
		where.add("title ILIKE ?", "%"+filter.Search+"%")
	}

	order := "ORDER BY created_at DESC"
	if filter.Upcoming {
		where.addRaw("start_date > NOW()")
		order = "ORDER BY start_date ASC"
	}
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		%s
		%s
	`, eventColumns, where.clause(), order, page)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	return r.findByID(ctx, r.pool, id, false)
}

// FindByIDForUpdate locks the event row until the transaction ends, which
// serialises concurrent reservations of the same event.
func (r *EventRepositoryImpl) FindByIDForUpdate(ctx context.Context, q Querier, id int) (*model.Event, error) {
	return r.findByID(ctx, q, id, true)
}

func (r *EventRepositoryImpl) findByID(ctx context.Context, q Querier, id int, lock bool) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	event, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrEventNotFound)
	}
	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	var b setBuilder
	if params.Title != nil {
		b.add("title", *params.Title)
	}
	if params.Description != nil {
		b.add("description", *params.Description)
	}
	if params.Location != nil {
		b.add("location", *params.Location)
	}
	if params.Organizer != nil {
		b.add("organizer", *params.Organizer)
	}
	if params.StartDate != nil {
		b.add("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		b.add("end_date", *params.EndDate)
	}
	if params.Capacity != nil {
		b.add("capacity", *params.Capacity)
	}
	if params.TicketPrice != nil {
		b.add("ticket_price", *params.TicketPrice)
	}
	if params.Images != nil {
		b.add("images", *params.Images)
	}
	if params.ProviderID != nil {
		b.add("provider_id", *params.ProviderID)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("events", id, eventColumns)
	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrEventNotFound)
	}
	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrEventNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
