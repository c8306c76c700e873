package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	myErr "monad-feedback/internal/types/errors"
)

type PostgresStorage struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresStorage(db *sql.DB, logger *zap.SugaredLogger) *PostgresStorage {
	return &PostgresStorage{
		DB:     db,
		Logger: logger,
	}
}

// InitSchema - создает таблицы и индексы, если их еще нет.
// Вызывается один раз при старте сервиса.
func (postgresStorage *PostgresStorage) InitSchema(ctx context.Context) error {
	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS feedback (
			id UUID PRIMARY KEY,
			feedback_text TEXT NOT NULL,
			category VARCHAR(100) NOT NULL,
			x_handle VARCHAR(15),
			payment_amount VARCHAR(20) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			anonymous_timestamp TIMESTAMP WITH TIME ZONE NOT NULL,
			indexed BOOLEAN NOT NULL DEFAULT FALSE
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS user_history (
			id UUID PRIMARY KEY,
			feedback_id UUID REFERENCES feedback(id),
			wallet_address VARCHAR(42) NOT NULL,
			category VARCHAR(100) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			anonymous_timestamp TIMESTAMP WITH TIME ZONE NOT NULL
		)
		`,
		`CREATE INDEX IF NOT EXISTS idx_user_history_wallet ON user_history(wallet_address)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_category ON feedback(category)`,
	}

	for _, statement := range statements {
		if _, err := postgresStorage.DB.ExecContext(ctx, statement); err != nil {
			postgresStorage.Logger.Error("Failed to init schema", zap.Error(err))

			return myErr.ErrDBInternal
		}
	}

	postgresStorage.Logger.Info("Database schema initialized successfully")

	return nil
}

// AppendPair - сохраняет отзыв и запись истории в одной транзакции.
// Либо записываются обе записи, либо ни одной - осиротевших записей
// этот бэкенд не оставляет.
func (postgresStorage *PostgresStorage) AppendPair(
	ctx context.Context,
	fb feedback.Record,
	h history.Record,
) error {
	tx, err := postgresStorage.DB.BeginTx(ctx, nil)
	if err != nil {
		postgresStorage.Logger.Error("Failed to begin pair transaction", zap.Error(err))

		return myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err := tx.ExecContext(
		ctx,
		insertFeedbackQuery,
		fb.ID,
		fb.Text,
		fb.Category,
		nullableHandle(fb.XHandle),
		fb.PaymentAmount,
		fb.AnonymizedTimestamp,
	); err != nil {
		postgresStorage.Logger.Error(
			"Failed to save feedback record in pair transaction",
			zap.Error(err),
			zap.String("feedbackID", fb.ID),
		)

		return myErr.ErrDBInternal
	}

	if _, err := tx.ExecContext(
		ctx,
		insertHistoryQuery,
		uuid.New().String(),
		h.FeedbackID,
		h.WalletAddress,
		h.Category,
		h.AnonymizedTimestamp,
	); err != nil {
		postgresStorage.Logger.Error(
			"Failed to save history record in pair transaction",
			zap.Error(err),
			zap.String("feedbackID", h.FeedbackID),
		)

		return myErr.ErrDBInternal
	}

	if err := tx.Commit(); err != nil {
		postgresStorage.Logger.Error("Failed to commit pair transaction", zap.Error(err))

		return myErr.ErrDBInternal
	}

	postgresStorage.Logger.Info(
		fmt.Sprintf("Feedback pair with feedbackID %s saved successfully", fb.ID),
	)

	return nil
}

const insertFeedbackQuery = `
		INSERT INTO feedback (id, feedback_text, category, x_handle, payment_amount, anonymous_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		`

const insertHistoryQuery = `
		INSERT INTO user_history (id, feedback_id, wallet_address, category, anonymous_timestamp)
		VALUES ($1, $2, $3, $4, $5)
		`

// AppendFeedback - сохраняет одиночную запись отзыва
func (postgresStorage *PostgresStorage) AppendFeedback(ctx context.Context, fb feedback.Record) error {
	_, err := postgresStorage.DB.ExecContext(
		ctx,
		insertFeedbackQuery,
		fb.ID,
		fb.Text,
		fb.Category,
		nullableHandle(fb.XHandle),
		fb.PaymentAmount,
		fb.AnonymizedTimestamp,
	)
	if err != nil {
		postgresStorage.Logger.Error(
			"Failed to save feedback record to DB",
			zap.Error(err),
			zap.String("feedbackID", fb.ID),
		)

		return myErr.ErrDBInternal
	}

	return nil
}

// AppendHistory - сохраняет одиночную запись истории
func (postgresStorage *PostgresStorage) AppendHistory(ctx context.Context, h history.Record) error {
	_, err := postgresStorage.DB.ExecContext(
		ctx,
		insertHistoryQuery,
		uuid.New().String(),
		h.FeedbackID,
		h.WalletAddress,
		h.Category,
		h.AnonymizedTimestamp,
	)
	if err != nil {
		postgresStorage.Logger.Error(
			"Failed to save history record to DB",
			zap.Error(err),
			zap.String("feedbackID", h.FeedbackID),
		)

		return myErr.ErrDBInternal
	}

	return nil
}

// ListFeedback - возвращает все отзывы, новые (по анонимизированному времени) первыми
func (postgresStorage *PostgresStorage) ListFeedback(ctx context.Context) ([]feedback.Record, error) {
	query :=
		`
		SELECT id, feedback_text, category, COALESCE(x_handle, ''), payment_amount, anonymous_timestamp
		FROM feedback
		ORDER BY anonymous_timestamp DESC
		`

	rows, err := postgresStorage.DB.QueryContext(ctx, query)
	if err != nil {
		postgresStorage.Logger.Error("Failed to get feedback records from DB", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var records []feedback.Record
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
			postgresStorage.Logger.Error("Failed to scan feedback row from DB", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		postgresStorage.Logger.Error(
			"Error occurred while iterating over feedback rows from DB",
			zap.Error(err),
		)

		return nil, myErr.ErrDBInternal
	}

	return records, nil
}

// ListHistory - возвращает все записи истории, новые первыми
func (postgresStorage *PostgresStorage) ListHistory(ctx context.Context) ([]history.Record, error) {
	query :=
		`
		SELECT feedback_id, wallet_address, category, anonymous_timestamp
		FROM user_history
		ORDER BY anonymous_timestamp DESC
		`

	rows, err := postgresStorage.DB.QueryContext(ctx, query)
	if err != nil {
		postgresStorage.Logger.Error("Failed to get history records from DB", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var records []history.Record
	for rows.Next() {
		var record history.Record
		err := rows.Scan(
			&record.FeedbackID,
			&record.WalletAddress,
			&record.Category,
			&record.AnonymizedTimestamp,
		)
		if err != nil {
			postgresStorage.Logger.Error("Failed to scan history row from DB", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		postgresStorage.Logger.Error(
			"Error occurred while iterating over history rows from DB",
			zap.Error(err),
		)

		return nil, myErr.ErrDBInternal
	}

	return records, nil
}

// UpgradeSchema - добавляет колонку x_handle, если ее еще нет
func (postgresStorage *PostgresStorage) UpgradeSchema(ctx context.Context) error {
	query :=
		`
		ALTER TABLE feedback
		ADD COLUMN IF NOT EXISTS x_handle VARCHAR(15)
		`

	if _, err := postgresStorage.DB.ExecContext(ctx, query); err != nil {
		postgresStorage.Logger.Error("Failed to upgrade schema", zap.Error(err))

		return myErr.ErrDBInternal
	}

	postgresStorage.Logger.Info("Schema upgrade completed: x_handle column present")

	return nil
}

func nullableHandle(handle string) sql.NullString {
	return sql.NullString{
		String: handle,
		Valid:  handle != "",
	}
}
