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

type ReservationRepository interface {
	List(ctx context.Context, filter model.ReservationFilter) ([]*model.Reservation, error)
	FindByID(ctx context.Context, id int) (*model.Reservation, error)
	Update(ctx context.Context, id int, params model.UpdateReservationParams) (*model.Reservation, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	Create(ctx context.Context, q Querier, reservation *model.Reservation) (*model.Reservation, error)
	// EventOccupancy returns the event capacity and the tickets held by
	// reservations that are not cancelled.
	EventOccupancy(ctx context.Context, q Querier, eventID int) (capacity int, booked int, err error)
	// CountPlaceBookingsOn counts non-cancelled reservations of the place on
	// the given calendar day.
	CountPlaceBookingsOn(ctx context.Context, q Querier, placeID int, day model.Date) (int, error)
}

type ReservationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &ReservationRepositoryImpl{
		pool: pool,
	}
}

const reservationColumns = `id, user_id, event_id, place_id, number_of_tickets, number_of_persons, visit_date,
	total_price, status, payment_method, payment_id, payment_status, created_at, updated_at`

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	var reservation model.Reservation
	var visitDate *time.Time
	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.EventID,
		&reservation.PlaceID,
		&reservation.NumberOfTickets,
		&reservation.NumberOfPersons,
		&visitDate,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.PaymentMethod,
		&reservation.PaymentID,
		&reservation.PaymentStatus,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reservation.VisitDate = dateFromScan(visitDate)
	return &reservation, nil
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, q Querier, reservation *model.Reservation) (*model.Reservation, error) {
	query := `
		INSERT INTO reservations (
			user_id, event_id, place_id, number_of_tickets, number_of_persons, visit_date,
			total_price, status, payment_method, payment_id, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + reservationColumns

	created, err := scanReservation(q.QueryRow(ctx, query,
		reservation.UserID,
		reservation.EventID,
		reservation.PlaceID,
		reservation.NumberOfTickets,
		reservation.NumberOfPersons,
		dateArg(reservation.VisitDate),
		reservation.TotalPrice,
		reservation.Status,
		reservation.PaymentMethod,
		reservation.PaymentID,
		reservation.PaymentStatus,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReservationNotFound)
	}
	return created, nil
}

func (r *ReservationRepositoryImpl) List(ctx context.Context, filter model.ReservationFilter) ([]*model.Reservation, error) {
	var where whereBuilder
	if filter.UserID != nil {
		where.add("user_id = ?", *filter.UserID)
	}
	if filter.PlaceID != nil {
		where.add("place_id = ?", *filter.PlaceID)
	}
	if filter.EventID != nil {
		where.add("event_id = ?", *filter.EventID)
	}
	if filter.Status != "" {
		where.add("status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		where.add("(visit_date >= ?::date OR created_at::date >= ?::date)", filter.FromDate.Time)
	}
	if filter.ToDate != nil {
		where.add("(visit_date <= ?::date OR created_at::date <= ?::date)", filter.ToDate.Time)
	}
	if filter.ProviderID != nil {
		where.add(`(place_id IN (SELECT id FROM places WHERE provider_id = ?)
			OR event_id IN (SELECT id FROM events WHERE provider_id = ?))`, *filter.ProviderID)
	}
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM reservations
		%s
		ORDER BY created_at DESC, id DESC
		%s
	`, reservationColumns, where.clause(), page)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]*model.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReservationNotFound)
	}
	return reservation, nil
}

func (r *ReservationRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateReservationParams) (*model.Reservation, error) {
	var b setBuilder
	if params.ClearEvent {
		b.addRaw("event_id = NULL")
		b.addRaw("number_of_tickets = NULL")
	}
	if params.ClearPlace {
		b.addRaw("place_id = NULL")
		b.addRaw("number_of_persons = NULL")
		b.addRaw("visit_date = NULL")
	}
	if params.UserID != nil {
		b.add("user_id", *params.UserID)
	}
	if params.EventID != nil {
		b.add("event_id", *params.EventID)
	}
	if params.PlaceID != nil {
		b.add("place_id", *params.PlaceID)
	}
	if params.NumberOfTickets != nil {
		b.add("number_of_tickets", *params.NumberOfTickets)
	}
	if params.NumberOfPersons != nil {
		b.add("number_of_persons", *params.NumberOfPersons)
	}
	if params.VisitDate != nil {
		b.add("visit_date", params.VisitDate.Time)
	}
	if params.TotalPrice != nil {
		b.add("total_price", *params.TotalPrice)
	}
	if params.Status != nil {
		b.add("status", *params.Status)
	}
	if params.PaymentMethod != nil {
		b.add("payment_method", *params.PaymentMethod)
	}
	if params.PaymentID != nil {
		b.add("payment_id", *params.PaymentID)
	}
	if params.PaymentStatus != nil {
		b.add("payment_status", *params.PaymentStatus)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("reservations", id, reservationColumns)
	reservation, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrReservationNotFound)
	}
	return reservation, nil
}

func (r *ReservationRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrReservationNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepositoryImpl) EventOccupancy(ctx context.Context, q Querier, eventID int) (int, int, error) {
	query := `
		SELECT e.capacity, COALESCE(SUM(r.number_of_tickets), 0)
		FROM events e
		LEFT JOIN reservations r ON r.event_id = e.id AND r.status <> 'cancelled'
		WHERE e.id = $1
		GROUP BY e.id
	`

	var capacity, booked int
	err := q.QueryRow(ctx, query, eventID).Scan(&capacity, &booked)
	if err != nil {
		return 0, 0, translateError(err, apperrors.ErrEventNotFound)
	}
	return capacity, booked, nil
}

func (r *ReservationRepositoryImpl) CountPlaceBookingsOn(ctx context.Context, q Querier, placeID int, day model.Date) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE place_id = $1
		AND visit_date = $2::date
		AND status <> 'cancelled'
	`

	var count int
	if err := q.QueryRow(ctx, query, placeID, day.Time).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
