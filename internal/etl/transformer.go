package etl

import (
	"melodia/internal/types/elastic"

	"go.uber.org/zap"
)

type Transformer struct {
	Logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{
		Logger: logger,
	}
}

// Transform - переводит комментарии из формата хранения в PostgreSQL в FeedbackDoc для хранения в ES.
// Комментарии без владельца (ресурс уже удален) пропускаются
func (t *Transformer) Transform(input []Row) []elastic.FeedbackDoc {
	docs := make([]elastic.FeedbackDoc, 0, len(input))
	for _, row := range input {
		if row.OwnerID == "" {
			continue
		}

		f := row.Feedback
		docs = append(docs, elastic.FeedbackDoc{
			ID:               f.ID,
			ResourceID:       f.ResourceID,
			ResourceType:     string(f.ResourceType),
			OwnerID:          row.OwnerID,
			AuthorID:         f.AuthorID,
			Comment:          f.Comment,
			TimestampSeconds: f.TimestampSeconds,
			IsReply:          f.IsReply(),
			IsResolved:       f.IsResolved,
			CreatedAt:        f.CreatedAt,
			IndexVersion:     row.IndexVersion,
		})
	}

	t.Logger.Infof("Transformed %d docs succesfully", len(docs))

	return docs
}
