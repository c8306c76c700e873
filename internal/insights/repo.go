package insights

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// InitSchema - создает таблицу счетчиков, если ее еще нет
func (r *Repository) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS category_stats (
			category VARCHAR(100) PRIMARY KEY,
			submissions BIGINT NOT NULL DEFAULT 0
		)
	`)

	return err
}

func (r *Repository) IncrementCategory(ctx context.Context, category string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO category_stats (category, submissions)
		VALUES ($1, 1)
		ON CONFLICT (category)
		DO UPDATE SET submissions = category_stats.submissions + 1
	`, category)

	return err
}

func (r *Repository) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, submissions
		FROM category_stats
		ORDER BY submissions DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var count CategoryCount
		if err := rows.Scan(&count.Category, &count.Submissions); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, nil
}
