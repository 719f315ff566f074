package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

// reportingRepository runs the aggregation queries behind the dashboard and
// the synchronous report endpoints. All aggregates read stored (base
// currency) amounts, so mixed-currency histories sum cleanly.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// dateBounds renders optional inclusive date clauses starting at the given
// placeholder index.
func dateBounds(from, to *time.Time, args []any) (string, []any) {
	clause := ""
	if from != nil {
		args = append(args, *from)
		clause += fmt.Sprintf(" AND t.date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		clause += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}
	return clause, args
}

func (r *reportingRepository) TotalsByCategory(ctx context.Context, userID string, from, to *time.Time) ([]domain.CategoryTotal, error) {
	args := []any{userID}
	bounds, args := dateBounds(from, to, args)

	query := `
        SELECT t.category_id, COALESCE(c.name, ''), SUM(t.amount) AS total
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.deleted_at IS NULL` + bounds + `
        GROUP BY t.category_id, c.name
        ORDER BY total DESC;
    `
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) TotalsByType(ctx context.Context, userID string, from, to *time.Time) ([]domain.TypeTotal, error) {
	args := []any{userID}
	bounds, args := dateBounds(from, to, args)

	query := `
        SELECT t.type, SUM(t.amount) AS total
        FROM transactions t
        WHERE t.user_id = $1 AND t.deleted_at IS NULL` + bounds + `
        GROUP BY t.type
        ORDER BY t.type;
    `
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying type totals: %w", err)
	}
	defer rows.Close()

	result := []domain.TypeTotal{}
	for rows.Next() {
		var row domain.TypeTotal
		if err := rows.Scan(&row.Type, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning type total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type total rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) TotalsByMonth(ctx context.Context, userID string, from, to *time.Time) ([]domain.MonthTotal, error) {
	args := []any{userID}
	bounds, args := dateBounds(from, to, args)

	query := `
        SELECT TO_CHAR(t.date, 'YYYY-MM') AS month, SUM(t.amount) AS total
        FROM transactions t
        WHERE t.user_id = $1 AND t.deleted_at IS NULL` + bounds + `
        GROUP BY month
        ORDER BY month;
    `
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying month totals: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthTotal{}
	for rows.Next() {
		var row domain.MonthTotal
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning month total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating month total rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) TopCategories(ctx context.Context, userID string, from, to *time.Time, limit int) ([]domain.CategoryBreakdown, error) {
	if limit <= 0 {
		limit = 5
	}
	args := []any{userID}
	bounds, args := dateBounds(from, to, args)
	args = append(args, limit)

	query := fmt.Sprintf(`
        SELECT
            t.category_id,
            COALESCE(c.name, ''),
            SUM(t.amount) AS total,
            SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END) AS income,
            SUM(CASE WHEN t.type = 'expense' THEN t.amount ELSE 0 END) AS expense
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.deleted_at IS NULL%s
        GROUP BY t.category_id, c.name
        ORDER BY total DESC
        LIMIT $%d;
    `, bounds, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying top categories: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryBreakdown{}
	for rows.Next() {
		var row domain.CategoryBreakdown
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("error scanning top category row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top category rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) MonthlyAverages(ctx context.Context, userID string) ([]domain.MonthlyAverage, error) {
	query := `
        SELECT
            EXTRACT(YEAR FROM t.date)::int AS year,
            EXTRACT(MONTH FROM t.date)::int AS month,
            AVG(t.amount) AS avg_amount
        FROM transactions t
        WHERE t.user_id = $1 AND t.deleted_at IS NULL
        GROUP BY year, month
        ORDER BY year, month;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly averages: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyAverage{}
	for rows.Next() {
		var row domain.MonthlyAverage
		var avg decimal.Decimal
		if err := rows.Scan(&row.Year, &row.Month, &avg); err != nil {
			return nil, fmt.Errorf("error scanning monthly average row: %w", err)
		}
		row.AvgAmount = avg.Round(2)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly average rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) CategoryComparison(ctx context.Context, userID string, year int, month time.Month) ([]domain.CategoryTotal, error) {
	query := `
        SELECT t.category_id, c.name, SUM(t.amount) AS total
        FROM transactions t
        JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.deleted_at IS NULL
            AND EXTRACT(YEAR FROM t.date) = $2
            AND EXTRACT(MONTH FROM t.date) = $3
        GROUP BY t.category_id, c.name
        ORDER BY total DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("error querying category comparison: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning category comparison row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category comparison rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) TopExpenses(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.deleted_at IS NULL AND t.type = 'expense'
        ORDER BY t.amount DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top expenses: %w", err)
	}
	defer rows.Close()

	result := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top expense rows: %w", err)
	}
	return result, nil
}
