package service

import (
	"context"
	"fmt"

	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is the slice of *pgxpool.Pool the services need: plain queries
// plus transactions.
type TxBeginner interface {
	repository.Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
