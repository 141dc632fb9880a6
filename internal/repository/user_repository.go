package repository

import (
	"context"
	"fmt"

	"tourism-reservation/internal/model"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error)
	UpdateStatus(ctx context.Context, id int, status model.UserStatus) (*model.User, error)
	Delete(ctx context.Context, id int) error
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

const userColumns = `id, first_name, last_name, email, role, status, phone, profile_image, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.Phone,
		&user.ProfileImage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, role, status, phone, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Role, user.Status, user.Phone, user.ProfileImage,
	))
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return created, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	var where whereBuilder
	if filter.Role != "" {
		where.add("role = ?", filter.Role)
	}
	if filter.Status != "" {
		where.add("status = ?", filter.Status)
	}
	if filter.Search != "" {
		where.add("(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)", "%"+filter.Search+"%")
	}
	page := where.page(filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		%s
		ORDER BY created_at DESC
		%s
	`, userColumns, where.clause(), page)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error) {
	var b setBuilder
	if params.FirstName != nil {
		b.add("first_name", *params.FirstName)
	}
	if params.LastName != nil {
		b.add("last_name", *params.LastName)
	}
	if params.Email != nil {
		b.add("email", *params.Email)
	}
	if params.Role != nil {
		b.add("role", *params.Role)
	}
	if params.Status != nil {
		b.add("status", *params.Status)
	}
	if params.Phone != nil {
		b.add("phone", *params.Phone)
	}
	if params.ProfileImage != nil {
		b.add("profile_image", *params.ProfileImage)
	}

	if b.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := b.build("users", id, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.UserStatus) (*model.User, error) {
	return r.Update(ctx, id, model.UpdateUserParams{Status: &status})
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrUserNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
