package etl

import (
	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/types/elastic"
)

type Transformer struct {
	Logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{
		Logger: logger,
	}
}

// Transform - переводит записи из формата хранения в PostgreSQL в FeedbackDoc
// для хранения в ES. Сумма платежа в индекс не попадает, кошелька в записи нет
// по построению.
func (t *Transformer) Transform(input []feedback.Record) []elastic.FeedbackDoc {
	docs := make([]elastic.FeedbackDoc, 0, len(input))
	for _, record := range input {
		docs = append(docs, elastic.FeedbackDoc{
			ID:                  record.ID,
			Text:                record.Text,
			Category:            record.Category,
			XHandle:             record.XHandle,
			AnonymizedTimestamp: record.AnonymizedTimestamp,
		})
	}

	t.Logger.Infof("Transformed %d docs succesfully", len(input))

	return docs
}
