package etl

import (
	"database/sql"

	"go.uber.org/zap"
	"golang.org/x/net/context"

	"monad-feedback/internal/feedback"
)

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

// ExtractNew - достает отзывы, которые еще не попали в полнотекстовый поиск
// Возвращает массив отзывов и error
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]feedback.Record, error) {
	query :=
		`
		SELECT id, feedback_text, category, COALESCE(x_handle, ''), payment_amount, anonymous_timestamp
		FROM feedback
		WHERE indexed = FALSE
		`

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))

		return nil, err
	}
	defer rows.Close()

	var result []feedback.Record

	for rows.Next() {
		var record feedback.Record
		err := rows.Scan(
			&record.ID,
			&record.Text,
			&record.Category,
			&record.XHandle,
			&record.PaymentAmount,
			&record.AnonymizedTimestamp,
		)
		if err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))

			return nil, err
		}
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
