package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Fizik0/MarketUnitCalc/internal/config"
	"github.com/Fizik0/MarketUnitCalc/internal/entity"
	"github.com/Fizik0/MarketUnitCalc/internal/repository"
)

// CalculationService is the persistence surface for saved wizard sessions.
// Saves publish an event; loads go through the cache first.
type CalculationService struct {
	calcRepo    *repository.CalculationRepository
	kafkaWriter *kafka.Writer
	rdb         *redis.Client
}

// NewCalculationService creates a new instance of CalculationService.
func NewCalculationService(calcRepo *repository.CalculationRepository, kafkaWriter *kafka.Writer, rdb *redis.Client) *CalculationService {
	return &CalculationService{
		calcRepo:    calcRepo,
		kafkaWriter: kafkaWriter,
		rdb:         rdb,
	}
}

// SaveCalculation stores a calculation and publishes a saved event. The
// record round-trips verbatim; the engine is never invoked here.
func (s *CalculationService) SaveCalculation(ctx context.Context, calc *entity.Calculation) (*entity.Calculation, error) {
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}
	calc.SavedAt = time.Now().UTC()
	calc.Version = entity.CalculationVersion
	if calc.CompletedSteps == nil {
		calc.CompletedSteps = []int{}
	}

	if err := s.calcRepo.CreateCalculation(ctx, calc); err != nil {
		logger.Error().Err(err).Msg("Error saving calculation")
		return nil, err
	}

	if err := s.publishCalculationEvent(ctx, calc, "saved"); err != nil {
		return nil, err
	}

	return calc, nil
}

// UpdateCalculation overwrites a saved calculation and refreshes its cache
// entry. The stamp fields are reset the same way a save resets them.
func (s *CalculationService) UpdateCalculation(ctx context.Context, calc *entity.Calculation) (*entity.Calculation, error) {
	calc.SavedAt = time.Now().UTC()
	calc.Version = entity.CalculationVersion
	if calc.CompletedSteps == nil {
		calc.CompletedSteps = []int{}
	}

	if err := s.calcRepo.UpdateCalculation(ctx, calc); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating calculation %s", calc.ID)
		}
		return nil, err
	}

	s.cacheCalculation(ctx, calc)

	if err := s.publishCalculationEvent(ctx, calc, "updated"); err != nil {
		return nil, err
	}
	return calc, nil
}

// GetCalculation loads a calculation by ID, cache first.
func (s *CalculationService) GetCalculation(ctx context.Context, id string) (*entity.Calculation, error) {
	if cached := s.cachedCalculation(ctx, id); cached != nil {
		return cached, nil
	}

	calc, err := s.calcRepo.GetCalculation(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting calculation %s", id)
		}
		return nil, err
	}

	s.cacheCalculation(ctx, calc)
	return calc, nil
}

// ListCalculations returns all saved calculations, newest first.
func (s *CalculationService) ListCalculations(ctx context.Context) ([]entity.Calculation, error) {
	calcs, err := s.calcRepo.ListCalculations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing calculations")
		return nil, err
	}
	return calcs, nil
}

// DeleteCalculation removes a calculation and its cache entry.
func (s *CalculationService) DeleteCalculation(ctx context.Context, id string) error {
	calc, err := s.calcRepo.GetCalculation(ctx, id)
	if err != nil {
		return err
	}

	if err := s.calcRepo.DeleteCalculation(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting calculation %s", id)
		return err
	}

	if s.rdb != nil && !config.IsTestEnv() {
		if err := s.rdb.Del(ctx, calculationCacheKey(id)).Err(); err != nil {
			logger.Error().Err(err).Msgf("Error evicting calculation %s from cache", id)
		}
	}

	return s.publishCalculationEvent(ctx, calc, "deleted")
}

func (s *CalculationService) publishCalculationEvent(ctx context.Context, calc *entity.Calculation, event string) error {
	if s.kafkaWriter == nil || config.IsTestEnv() {
		return nil
	}

	payload, err := json.Marshal(calc)
	if err != nil {
		return err
	}

	// calculation.saved.<id> or calculation.deleted.<id>
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("calculation.%s.%s", event, calc.ID)),
		Value: payload,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing calculation %s event", event)
		return err
	}
	return nil
}

func (s *CalculationService) cachedCalculation(ctx context.Context, id string) *entity.Calculation {
	if s.rdb == nil || config.IsTestEnv() {
		return nil
	}

	data, err := s.rdb.Get(ctx, calculationCacheKey(id)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading calculation %s from cache", id)
		}
		return nil
	}

	var calc entity.Calculation
	if err := json.Unmarshal([]byte(data), &calc); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling cached calculation %s", id)
		return nil
	}
	return &calc
}

func (s *CalculationService) cacheCalculation(ctx context.Context, calc *entity.Calculation) {
	if s.rdb == nil || config.IsTestEnv() {
		return
	}

	data, err := json.Marshal(calc)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling calculation %s for cache", calc.ID)
		return
	}
	if err := s.rdb.Set(ctx, calculationCacheKey(calc.ID), data, 24*time.Hour).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error caching calculation %s", calc.ID)
	}
}

func calculationCacheKey(id string) string {
	return fmt.Sprintf("calculation:%s", id)
}
