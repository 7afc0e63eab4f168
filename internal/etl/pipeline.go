package etl

import (
	"context"
	"time"

	"melodia/internal/types/elastic"

	"go.uber.org/zap"
)

type Extractor interface {
	ExtractNew(ctx context.Context) ([]Row, error)
}

type Loader interface {
	Load(ctx context.Context, docs []elastic.FeedbackDoc) error
}

type Pipeline struct {
	extractor   Extractor
	transformer *Transformer
	loader      Loader
	logger      *zap.SugaredLogger
	interval    time.Duration
}

func NewPipeline(
	extractor Extractor,
	transformer *Transformer,
	loader Loader,
	logger *zap.SugaredLogger,
	interval time.Duration,
) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		logger:      logger,
		interval:    interval,
	}
}

// Run - крутит итерации ETL раз в interval до отмены ctx.
// Ошибки итерации логируются, следующая итерация повторит те же строки
func (p *Pipeline) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Infow("ETL pipeline started", "interval", p.interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Infow("ETL pipeline stopped")
			return nil
		case <-ticker.C:
			p.logger.Infow("Running ETL pipeline iteration")

			n, err := p.RunOnce(ctx)
			if err != nil {
				continue
			}
			if n > 0 {
				p.logger.Infof("ETL pipeline completed, successfully loaded %d docs", n)
			}
		}
	}
}

// RunOnce - одна итерация extract -> transform -> load, возвращает число загруженных документов
func (p *Pipeline) RunOnce(ctx context.Context) (int, error) {
	// EXTRACT
	rows, err := p.extractor.ExtractNew(ctx)
	if err != nil {
		p.logger.Errorw("Extracting failed", zap.Error(err))
		return 0, err
	}
	if len(rows) == 0 {
		p.logger.Debugw("No new feedback to process")
		return 0, nil
	}

	// TRANSFORM
	docs := p.transformer.Transform(rows)

	// LOAD
	if err := p.loader.Load(ctx, docs); err != nil {
		p.logger.Errorw("Error while loading docs to ES", zap.Error(err))
		return 0, err
	}

	return len(docs), nil
}
