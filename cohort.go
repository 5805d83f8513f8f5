package cohort

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/tessark/cohort/cluster"
	"github.com/tessark/cohort/core"
	"github.com/tessark/cohort/feature"
	"github.com/tessark/cohort/model"
	"github.com/tessark/cohort/order"
	"github.com/tessark/cohort/predict"
	"github.com/tessark/cohort/search"
	"github.com/tessark/cohort/stats"
	"github.com/tessark/cohort/util"
)

var defaultMaxConcurrency = runtime.GOMAXPROCS(0)

// Suite runs the search, sort, analytics and prediction engines over a
// shared collection of student records.
//
// A Suite owns its record slice: SortBy reorders it in place, and the
// LocalID values in search results index into it. All other operations are
// read-only and safe for concurrent use.
type Suite struct {
	records []*model.Record
	logger  *Logger
	metrics MetricsCollector
	sem     *semaphore.Weighted

	mu  sync.Mutex // guards rng
	rng *util.RNG
}

// NewSuite creates a Suite over the given records.
//
// Example:
//
//	suite := cohort.NewSuite(records,
//	    cohort.WithSeed(42),
//	    cohort.WithLogLevel(slog.LevelInfo),
//	)
func NewSuite(records []*model.Record, optFns ...Option) *Suite {
	opts := applyOptions(optFns)

	return &Suite{
		records: records,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
		sem:     semaphore.NewWeighted(int64(opts.maxConcurrency)),
		rng:     opts.rng,
	}
}

// Records returns the suite's record slice. The slice is shared, not
// copied.
func (s *Suite) Records() []*model.Record {
	return s.records
}

// Len returns the number of records in the suite.
func (s *Suite) Len() int {
	return len(s.records)
}

// childRNG derives an independent random source from the suite's seed
// stream. Each derived source can be handed to a goroutine without
// synchronization.
func (s *Suite) childRNG() *util.RNG {
	s.mu.Lock()
	defer s.mu.Unlock()
	return util.NewRNG(s.rng.Int63())
}

// FuzzySearch ranks records by edit-distance similarity between the query
// and each record's searchable text. An empty suite yields no matches.
func (s *Suite) FuzzySearch(ctx context.Context, query string, opts *search.FuzzyOptions) []search.Match {
	start := time.Now()
	matches := search.Fuzzy(s.records, query, opts)
	s.metrics.RecordSearch("fuzzy", len(matches), time.Since(start))
	s.logger.LogSearch(ctx, "fuzzy", query, len(matches))
	return matches
}

// Relevance ranks records by TF-IDF relevance of their searchable text to
// the query terms.
func (s *Suite) Relevance(ctx context.Context, query string) []search.Match {
	start := time.Now()
	matches := search.Relevance(s.records, query)
	s.metrics.RecordSearch("relevance", len(matches), time.Since(start))
	s.logger.LogSearch(ctx, "relevance", query, len(matches))
	return matches
}

// WeightedFilter scores records against multiple criteria and keeps those
// whose weighted match ratio clears the threshold.
func (s *Suite) WeightedFilter(ctx context.Context, criteria search.Criteria) []search.Match {
	start := time.Now()
	matches := search.Weighted(s.records, criteria)
	s.metrics.RecordSearch("weighted", len(matches), time.Since(start))
	s.logger.LogSearch(ctx, "weighted", "", len(matches))
	return matches
}

// BuildPrefixIndex indexes every record name for prefix lookup. The
// returned index maps prefixes to LocalID positions in the suite's record
// slice, so it is invalidated by SortBy.
func (s *Suite) BuildPrefixIndex() *search.PrefixIndex {
	idx := search.NewPrefixIndex()
	for i, r := range s.records {
		idx.Insert(core.LocalID(i), r.Name)
	}
	return idx
}

// SortBy reorders the suite's records in place by the given keys.
func (s *Suite) SortBy(ctx context.Context, keys []order.Key, opts *order.CompositeOptions) error {
	start := time.Now()
	err := order.Composite(s.records, keys, opts)
	s.metrics.RecordSort(len(s.records), time.Since(start))
	if err != nil {
		return err
	}
	s.logger.LogSort(ctx, len(keys), len(s.records))
	return nil
}

// PlanCourses orders courses so that every prerequisite precedes the course
// that requires it. Returns a *order.ErrCyclicDependency if the
// prerequisites contain a cycle.
func (s *Suite) PlanCourses(ctx context.Context, courses []string, prereqs []order.Edge) ([]string, error) {
	start := time.Now()
	plan, err := order.Topological(courses, prereqs)
	s.metrics.RecordSort(len(plan), time.Since(start))
	if err != nil {
		return nil, err
	}
	s.logger.LogSort(ctx, len(prereqs), len(plan))
	return plan, nil
}

// Describe computes descriptive statistics for one feature across all
// records. Returns ErrEmptyDataset when the suite has no records.
func (s *Suite) Describe(ctx context.Context, kind feature.Kind) (*stats.Summary, error) {
	start := time.Now()
	summary, err := s.describe(kind)
	s.metrics.RecordAnalysis("describe", time.Since(start), err)
	s.logger.LogAnalysis(ctx, "describe", err)
	return summary, err
}

func (s *Suite) describe(kind feature.Kind) (*stats.Summary, error) {
	values, err := feature.Column(s.records, kind)
	if err != nil {
		return nil, err
	}
	summary, err := stats.Describe(values)
	if err != nil {
		return nil, translateError(err)
	}
	return summary, nil
}

// DescribeEach computes descriptive statistics for several features
// concurrently. Concurrency is bounded by WithMaxConcurrency; the first
// failure cancels outstanding work and is returned.
func (s *Suite) DescribeEach(ctx context.Context, kinds ...feature.Kind) (map[feature.Kind]*stats.Summary, error) {
	summaries := make([]*stats.Summary, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)

			summary, err := s.describe(kind)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}

	err := g.Wait()
	s.logger.LogAnalysis(ctx, "describe_each", err)
	if err != nil {
		return nil, err
	}

	out := make(map[feature.Kind]*stats.Summary, len(kinds))
	for i, kind := range kinds {
		out[kind] = summaries[i]
	}
	return out, nil
}

// Correlation computes the pairwise Pearson correlation matrix over the
// schema's features.
func (s *Suite) Correlation(ctx context.Context, schema *feature.Schema, opts *stats.CorrelationOptions) (*stats.CorrelationMatrix, error) {
	start := time.Now()
	matrix, err := stats.Correlation(s.records, schema, opts)
	err = translateError(err)
	s.metrics.RecordAnalysis("correlation", time.Since(start), err)
	s.logger.LogAnalysis(ctx, "correlation", err)
	if err != nil {
		return nil, err
	}
	return matrix, nil
}

// Trend analyzes a time-ordered series: direction, moving averages,
// seasonality, volatility and a linear forecast.
func (s *Suite) Trend(ctx context.Context, series []float64, opts *stats.TrendOptions) (*stats.TrendAnalysis, error) {
	start := time.Now()
	trend, err := stats.AnalyzeTrend(series, opts)
	err = translateError(err)
	s.metrics.RecordAnalysis("trend", time.Since(start), err)
	s.logger.LogAnalysis(ctx, "trend", err)
	if err != nil {
		return nil, err
	}
	return trend, nil
}

// Cluster partitions records by k-means over the schema's feature vectors.
// When opts.RNG is nil the suite's seed stream drives centroid
// initialization, so runs are reproducible under WithSeed.
func (s *Suite) Cluster(ctx context.Context, schema *feature.Schema, opts cluster.KMeansOptions) (*cluster.KMeansResult, error) {
	if opts.RNG == nil {
		opts.RNG = s.childRNG()
	}

	start := time.Now()
	result, err := cluster.KMeans(schema.Vectorize(s.records), opts)
	err = translateError(err)
	s.metrics.RecordAnalysis("kmeans", time.Since(start), err)
	if err != nil {
		s.logger.LogCluster(ctx, "kmeans", 0, err)
		return nil, err
	}
	s.logger.LogCluster(ctx, "kmeans", len(result.Clusters), nil)
	return result, nil
}

// DensityCluster groups records by DBSCAN over the schema's feature
// vectors. Points in no dense region are assigned cluster.Noise.
func (s *Suite) DensityCluster(ctx context.Context, schema *feature.Schema, opts cluster.DBSCANOptions) (*cluster.DBSCANResult, error) {
	start := time.Now()
	result, err := cluster.DBSCAN(schema.Vectorize(s.records), opts)
	err = translateError(err)
	s.metrics.RecordAnalysis("dbscan", time.Since(start), err)
	if err != nil {
		s.logger.LogCluster(ctx, "dbscan", 0, err)
		return nil, err
	}
	s.logger.LogCluster(ctx, "dbscan", result.ClusterCount, nil)
	return result, nil
}

// TrainingOptions bundles the per-model options used by TrainEnsemble.
// The zero value trains every member with its package defaults.
type TrainingOptions struct {
	Ridge    predict.RidgeOptions
	Tree     predict.TreeOptions
	Network  predict.NetworkOptions
	Ensemble predict.EnsembleOptions
}

// TrainEnsemble trains the ridge, tree and network members concurrently on
// the schema's feature vectors with the target feature as label, and
// combines them into a weighted ensemble.
//
// When opts.Network.RNG is nil the suite's seed stream drives weight
// initialization.
func (s *Suite) TrainEnsemble(ctx context.Context, schema *feature.Schema, target feature.Kind, opts TrainingOptions) (*predict.Ensemble, error) {
	features := schema.Vectorize(s.records)
	targets, err := feature.Column(s.records, target)
	if err != nil {
		return nil, err
	}
	if opts.Ridge.FeatureNames == nil {
		opts.Ridge.FeatureNames = schema.Names()
	}
	if opts.Network.RNG == nil {
		opts.Network.RNG = s.childRNG()
	}

	var (
		ridge   *predict.RidgeModel
		tree    *predict.TreeNode
		network *predict.Network
	)

	start := time.Now()
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ridge, err = predict.Ridge(features, targets, opts.Ridge)
		return err
	})
	g.Go(func() error {
		var err error
		tree, err = predict.BuildTree(features, targets, opts.Tree)
		return err
	})
	g.Go(func() error {
		var err error
		network, err = predict.TrainNetwork(features, targets, opts.Network)
		return err
	})
	err = g.Wait()

	s.metrics.RecordTraining("ensemble", time.Since(start), err)
	s.logger.LogTraining(ctx, "ensemble", len(targets), err)
	if err != nil {
		return nil, err
	}

	return predict.NewEnsemble(ridge, tree, network, opts.Ensemble)
}

// BatchPredict runs the ensemble over many inputs concurrently, bounded by
// WithMaxConcurrency. Results keep input order. The first failure cancels
// outstanding work and is returned.
func (s *Suite) BatchPredict(ctx context.Context, ensemble *predict.Ensemble, inputs [][]float64) ([]*predict.Prediction, error) {
	predictions := make([]*predict.Prediction, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)

			p, err := ensemble.Predict(input)
			if err != nil {
				return err
			}
			predictions[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return predictions, nil
}
