package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/Fizik0/MarketUnitCalc/internal/benchmark"
	"github.com/Fizik0/MarketUnitCalc/internal/config"
	"github.com/Fizik0/MarketUnitCalc/internal/engine"
	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const reportCacheTTL = time.Hour

// AnalysisService runs the calculation engine over input records and caches
// assembled reports.
type AnalysisService struct {
	rdb *redis.Client
}

// NewAnalysisService creates a new instance of AnalysisService. rdb may be
// nil, in which case report caching is disabled.
func NewAnalysisService(rdb *redis.Client) *AnalysisService {
	return &AnalysisService{rdb: rdb}
}

// Analyze assembles the full report for a record: economics, score,
// recommendations, standard scenarios, cohort LTV, LTV/CAC and benchmark
// positioning. Identical inputs are served from cache.
func (s *AnalysisService) Analyze(ctx context.Context, in *entity.InputRecord) (*entity.Report, error) {
	key, err := reportCacheKey(in)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedReport(ctx, key); cached != nil {
		return cached, nil
	}

	report := buildReport(in)

	s.cacheReport(ctx, key, report)
	return report, nil
}

// RunScenarios recomputes the economics under caller-supplied deltas.
func (s *AnalysisService) RunScenarios(ctx context.Context, in *entity.InputRecord, deltas map[string]entity.ScenarioDelta) entity.ScenarioSet {
	return engine.RunScenarios(in, deltas)
}

func buildReport(in *entity.InputRecord) *entity.Report {
	res := engine.Compute(in)
	scenarios := entity.StandardScenarios()
	results := engine.RunScenarios(in, scenarios)

	// Monthly profit per scenario: unit profit times the volume under that
	// scenario's delta.
	monthlyProfit := make(map[string]float64, len(scenarios))
	for name, delta := range scenarios {
		monthlyProfit[name] = results[name].UnitProfit * in.MonthlySalesVolume * (1 + delta.VolumeChange)
	}

	profile := benchmark.CommissionFor(in.Marketplace, in.Category)
	bm := benchmark.BenchmarkFor(in.Marketplace, in.Category)

	return &entity.Report{
		Input:           *in,
		Economics:       res,
		ProfitScore:     engine.Score(res),
		Recommendations: engine.Recommend(in),
		Scenarios:       results,
		MonthlyProfit:   monthlyProfit,
		Cohort:          engine.ComputeCohortLTV(in, res.ProfitMargin),
		LTVCAC:          engine.AnalyzeLTVCAC(in),
		Benchmark: entity.BenchmarkComparison{
			Marketplace:      in.Marketplace,
			Category:         in.Category,
			CommissionRate:   profile.CommissionRate,
			AvgPrice:         bm.AvgPrice,
			AvgMargin:        bm.AvgMargin,
			AvgLTVCAC:        bm.AvgLTVCAC,
			MarginVsCategory: res.ProfitMargin - bm.AvgMargin*100,
		},
	}
}

func (s *AnalysisService) cachedReport(ctx context.Context, key string) *entity.Report {
	if s.rdb == nil || config.IsTestEnv() {
		return nil
	}

	data, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msg("Error reading report cache")
		}
		return nil
	}

	var report entity.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		logger.Error().Err(err).Msg("Error unmarshalling cached report")
		return nil
	}
	return &report
}

func (s *AnalysisService) cacheReport(ctx context.Context, key string, report *entity.Report) {
	if s.rdb == nil || config.IsTestEnv() {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling report for cache")
		return
	}
	if err := s.rdb.Set(ctx, key, data, reportCacheTTL).Err(); err != nil {
		logger.Error().Err(err).Msg("Error writing report cache")
	}
}

func reportCacheKey(in *entity.InputRecord) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("could not marshal input record: %w", err)
	}
	sum := sha256.Sum256(data)
	return "report:" + hex.EncodeToString(sum[:]), nil
}
