package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/newswire/ai"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/storage"
)

// Default publication window: the first half of 2024, half-open.
var (
	DefaultWindowStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultWindowEnd   = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
)

// DefaultPoolSize is the default worker pool size for row parsing,
// half the CPU count with a minimum of 1.
var DefaultPoolSize = max(runtime.NumCPU()/2, 1)

// Pipeline orchestrates the load-once ingestion of the news dataset.
type Pipeline struct {
	articles    storage.ArticleRepository
	embedder    ai.Embedder
	datasetPath string
	windowStart time.Time
	windowEnd   time.Time
	batchSize   int
	poolSize    int
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithBatchSize sets the embedding batch size.
// Default is ai.DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", ai.ErrInvalidBatchSize, size)
		}
		p.batchSize = size
		return nil
	}
}

// WithDateWindow sets the half-open publication window [start, end).
// Defaults are DefaultWindowStart and DefaultWindowEnd.
func WithDateWindow(start, end time.Time) Option {
	return func(p *Pipeline) error {
		if !start.Before(end) {
			return fmt.Errorf("invalid date window: %s >= %s", start, end)
		}
		p.windowStart = start
		p.windowEnd = end
		return nil
	}
}

// WithPoolSize sets the worker pool size for row parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline reading from datasetPath.
func NewPipeline(
	articles storage.ArticleRepository,
	embedder ai.Embedder,
	datasetPath string,
	opts ...Option,
) (*Pipeline, error) {
	if articles == nil {
		return nil, ErrArticleRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Pipeline{
		articles:    articles,
		embedder:    embedder,
		datasetPath: datasetPath,
		windowStart: DefaultWindowStart,
		windowEnd:   DefaultWindowEnd,
		batchSize:   ai.DefaultBatchSize,
		poolSize:    DefaultPoolSize,
		logger:      slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run loads the dataset into the collection and returns the number of
// records loaded. The run is a no-op reporting zero when the collection is
// already populated.
//
// The bulk insert at the end is the only write, so a failure anywhere
// before it persists nothing; the failure is logged and wrapped in
// ErrLoadFailed, and a retry is manual. Record IDs are content-derived, so
// rerunning after a partially failed insert rewrites the same keys.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	count, err := p.articles.Count(ctx, nil)
	if err != nil {
		return 0, p.fail(err)
	}
	if count != 0 {
		p.logger.Info("no data to load, collection is not empty", "documents", count)
		return 0, nil
	}

	p.logger.Info("loading dataset into collection", "path", p.datasetPath)
	rows, err := readDataset(p.datasetPath)
	if err != nil {
		return 0, p.fail(err)
	}

	articles, err := p.normalize(ctx, rows)
	if err != nil {
		return 0, p.fail(err)
	}

	articles = p.filterWindow(articles)
	articles = dedupeByTitle(articles)
	articles = dedupeByDescription(articles)
	if len(articles) == 0 {
		return 0, p.fail(ErrNoSurvivingRows)
	}

	p.logger.Info("turning to the embedding provider", "rows", len(articles))
	texts := make([]string, len(articles))
	for i, article := range articles {
		texts[i] = article.Content
	}
	vectors, err := ai.EmbedBatched(ctx, p.embedder, texts, p.batchSize)
	if err != nil {
		return 0, p.fail(err)
	}
	for i, article := range articles {
		article.Vector = vectors[i]
	}

	written, err := p.articles.AddArticles(ctx, articles...)
	if err != nil {
		return 0, p.fail(err)
	}

	p.logger.Info("dataset loaded successfully", "documents", written)
	return written, nil
}

// fail logs a load failure and wraps it into the single ingestion-failure
// kind.
func (p *Pipeline) fail(err error) error {
	p.logger.Error("error loading data", "err", err)
	return fmt.Errorf("%w: %w", ErrLoadFailed, err)
}

// normalize turns raw rows into articles, parsing timestamps on the worker
// pool. Results are index-addressed so output order matches input order; any
// parse failure aborts the run.
func (p *Pipeline) normalize(ctx context.Context, rows []row) ([]*core.Article, error) {
	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	articles := make([]*core.Article, len(rows))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := range rows {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			pubDate, err := parsePubDate(rows[i].PubDate)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			articles[i] = &core.Article{
				Title:       rows[i].Title,
				PubDate:     pubDate,
				GUID:        rows[i].GUID,
				Link:        rows[i].Link,
				Description: rows[i].Description,
				Content:     core.ContentOf(rows[i].Title, rows[i].Description),
			}
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

// filterWindow keeps articles published in [windowStart, windowEnd).
func (p *Pipeline) filterWindow(articles []*core.Article) []*core.Article {
	kept := make([]*core.Article, 0, len(articles))
	for _, article := range articles {
		if article.PubDate.Before(p.windowStart) {
			continue
		}
		if !article.PubDate.Before(p.windowEnd) {
			continue
		}
		kept = append(kept, article)
	}
	p.logger.Info("filtered rows to publication window",
		"kept", len(kept), "dropped", len(articles)-len(kept))
	return kept
}

// dedupeByTitle drops articles whose title duplicates an earlier-kept
// article's title; the first occurrence wins.
func dedupeByTitle(articles []*core.Article) []*core.Article {
	seen := make(map[string]bool, len(articles))
	kept := make([]*core.Article, 0, len(articles))
	for _, article := range articles {
		if seen[article.Title] {
			continue
		}
		seen[article.Title] = true
		kept = append(kept, article)
	}
	return kept
}

// dedupeByDescription drops articles whose description duplicates an
// earlier-kept article's description; the first occurrence wins. Runs after
// the title pass, the two passes are sequential, not independent.
func dedupeByDescription(articles []*core.Article) []*core.Article {
	seen := make(map[string]bool, len(articles))
	kept := make([]*core.Article, 0, len(articles))
	for _, article := range articles {
		if seen[article.Description] {
			continue
		}
		seen[article.Description] = true
		kept = append(kept, article)
	}
	return kept
}
