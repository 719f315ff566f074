package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// sortColumns whitelists the dynamic sort targets. Anything else falls back
// to the default date ordering.
var sortColumns = map[string]string{
	"date":            "t.date",
	"amount":          "t.amount",
	"original_amount": "t.original_amount",
	"description":     "t.description",
	"type":            "t.type",
	"category_id":     "t.category_id",
	"created_at":      "t.created_at",
}

const transactionColumns = `
        t.transaction_id, t.description, t.amount, t.original_amount, t.currency,
        t.type, t.date, t.category_id, COALESCE(c.name, ''), t.user_id,
        t.created_at, t.updated_at, t.deleted_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.Description,
		&txn.Amount,
		&txn.OriginalAmount,
		&txn.Currency,
		&txn.Type,
		&txn.Date,
		&txn.CategoryID,
		&txn.CategoryName,
		&txn.UserID,
		&txn.CreatedAt,
		&txn.UpdatedAt,
		&txn.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions
            (transaction_id, description, amount, original_amount, currency, type, date, category_id, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Description,
		txn.Amount,
		txn.OriginalAmount,
		txn.Currency,
		txn.Type,
		txn.Date,
		txn.CategoryID,
		txn.UserID,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.transaction_id = $1 AND t.user_id = $2 AND t.deleted_at IS NULL;
    `
	return scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
}

// buildFilterClauses translates the filter spec into conjunctive WHERE
// clauses. Absent fields contribute no clause at all.
func buildFilterClauses(userID string, filter domain.TransactionFilter) ([]string, []any) {
	clauses := []string{"t.user_id = $1", "t.deleted_at IS NULL"}
	args := []any{userID}

	addClause := func(condition string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if len(filter.CategoryIDs) > 0 {
		addClause("t.category_id = ANY($%d)", []string(filter.CategoryIDs))
	}
	if filter.Type != "" {
		addClause("t.type = $%d", string(filter.Type))
	}
	if filter.DateFrom != nil {
		addClause("t.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addClause("t.date <= $%d", *filter.DateTo)
	}
	if filter.AmountMin != nil {
		addClause("t.amount >= $%d", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		addClause("t.amount <= $%d", *filter.AmountMax)
	}

	return clauses, args
}

func orderClause(filter domain.TransactionFilter) string {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		// Default ordering: most recent first, stable tiebreak on id.
		return "ORDER BY t.date DESC, t.transaction_id"
	}
	direction := "DESC"
	if filter.Order == domain.SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, t.transaction_id", column, direction)
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	clauses, args := buildFilterClauses(userID, filter)
	where := strings.Join(clauses, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions t WHERE ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE ` + where + `
        ` + orderClause(filter)

	if filter.Page > 0 {
		perPage := filter.PerPage
		if perPage <= 0 {
			perPage = 10
		}
		args = append(args, perPage)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, (filter.Page-1)*perPage)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, total, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET description = $1, amount = $2, original_amount = $3, currency = $4,
            type = $5, date = $6, category_id = $7, updated_at = $8
        WHERE transaction_id = $9 AND user_id = $10 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		txn.Description,
		txn.Amount,
		txn.OriginalAmount,
		txn.Currency,
		txn.Type,
		txn.Date,
		txn.CategoryID,
		txn.UpdatedAt,
		txn.TransactionID,
		txn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, userID, transactionID string, deletedAt time.Time) error {
	query := `
        UPDATE transactions
        SET deleted_at = $1, updated_at = $1
        WHERE transaction_id = $2 AND user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
