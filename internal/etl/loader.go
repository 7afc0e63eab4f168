package etl

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"melodia/internal/metrics"
	"melodia/internal/types/elastic"
	myErr "melodia/internal/types/errors"

	"go.uber.org/zap"
)

// BulkIndexer - то, что загрузчику нужно от ES
type BulkIndexer interface {
	BulkIndex(ctx context.Context, docs []elastic.FeedbackDoc) error
}

type ElasticLoader struct {
	Service BulkIndexer
	Logger  *zap.SugaredLogger
	DB      *sql.DB
}

func NewElasticLoader(service BulkIndexer, logger *zap.SugaredLogger, db *sql.DB) *ElasticLoader {
	return &ElasticLoader{
		Service: service,
		Logger:  logger,
		DB:      db,
	}
}

// Load - загружает подготовленные FeedbackDoc в индекс ElasticSearch и помечает их indexed
// Принимает массив FeedbackDoc, возвращает error
func (l *ElasticLoader) Load(ctx context.Context, docs []elastic.FeedbackDoc) error {
	if len(docs) == 0 {
		l.Logger.Infow("No documents to load")
		return nil
	}

	l.Logger.Infow("Loading documents to Elasticsearch", "count", len(docs))
	err := l.Service.BulkIndex(ctx, docs)
	if err != nil {
		l.Logger.Errorw("Failed to bulk index documents", zap.Error(err))
		return err
	}

	l.Logger.Infow("Successfully indexed documents", "count", len(docs))
	metrics.FeedbackIndexed.Add(float64(len(docs)))

	return l.markIndexed(ctx, docs)
}

// markIndexed - отмечает строки проиндексированными, только если с момента выборки
// их index_version не изменился. Измененные строки остаются indexed = FALSE и уйдут в следующий прогон
func (l *ElasticLoader) markIndexed(ctx context.Context, docs []elastic.FeedbackDoc) error {
	args := make([]interface{}, 0, 2*len(docs))
	conds := make([]string, len(docs))
	for i, doc := range docs {
		args = append(args, doc.ID, doc.IndexVersion)
		conds[i] = fmt.Sprintf("(id = $%d AND index_version = $%d)", 2*i+1, 2*i+2)
	}

	query := "UPDATE feedback SET indexed = TRUE WHERE " + strings.Join(conds, " OR ")

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		l.Logger.Errorw("Failed to update documents in PostgreSQL", zap.Error(err))
		return myErr.ErrDBInternal
	}

	marked, err := res.RowsAffected()
	if err != nil {
		l.Logger.Warnw("Failed to get affected rows", zap.Error(err))
		return nil
	}
	if stale := int64(len(docs)) - marked; stale > 0 {
		l.Logger.Infow("Documents changed during indexing, will be reindexed", "count", stale)
	}

	return nil
}
