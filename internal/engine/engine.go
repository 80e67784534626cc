// Package engine runs the full calculation: validation, benefits, taxes and
// totals. Calculate is pure; Engine adds a memo, metrics and the response
// envelope used by the shells.
package engine

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"ferias-engine/internal/benefits"
	"ferias-engine/internal/metrics"
	"ferias-engine/internal/model"
	"ferias-engine/internal/validator"
)

// Calculate validates req and, when every rule holds, computes the result.
func Calculate(req *model.CalculationRequest) model.Outcome {
	in, msgs := validator.Validate(req)
	if validator.HasCritical(msgs) {
		return model.Outcome{Errors: validator.Errors(msgs), Messages: msgs}
	}
	return success(Compute(in), msgs)
}

// Compute runs benefits and taxes over already validated inputs.
func Compute(in model.Inputs) model.CalculationResult {
	return Aggregate(benefits.Compute(in))
}

type Engine struct {
	log   *zap.Logger
	cache *lru.Cache[model.Inputs, model.CalculationResult]
}

// New returns an Engine memoizing up to cacheSize results. A cacheSize of 0
// disables the memo.
func New(log *zap.Logger, cacheSize int) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{log: log}
	if cacheSize > 0 {
		c, err := lru.New[model.Inputs, model.CalculationResult](cacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = c
	}
	return e, nil
}

// Process runs a calculation and wraps it in a response envelope.
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	outcome, cached := e.calculate(req)

	status := model.OutcomeSuccess
	if !outcome.Valid() {
		status = model.OutcomeFailure
		for _, m := range outcome.Messages {
			if m.Level == model.LevelCritical {
				metrics.ObserveViolation(m.Field, m.Code)
			}
		}
	}

	elapsed := time.Since(start)
	metrics.ObserveCalculation(status, cached, elapsed)
	now := time.Now().UTC()

	resp := &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339Nano),
			CalculationCompletedAt: now.Format(time.RFC3339Nano),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     status,
			Cached:                 cached,
		},
		Errors:            outcome.Errors,
		Messages:          outcome.Messages,
		CalculationResult: outcome.Result,
	}
	if outcome.Result != nil {
		resp.Formatted = Format(outcome.Result)
	}

	e.log.Debug("calculation processed",
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("outcome", status),
		zap.Bool("cached", cached),
		zap.Int("violations", len(outcome.Messages)),
		zap.Duration("elapsed", elapsed),
	)
	return resp
}

func (e *Engine) calculate(req *model.CalculationRequest) (model.Outcome, bool) {
	in, msgs := validator.Validate(req)
	if validator.HasCritical(msgs) {
		return model.Outcome{Errors: validator.Errors(msgs), Messages: msgs}, false
	}

	if e.cache != nil {
		if res, ok := e.cache.Get(in); ok {
			return success(res, msgs), true
		}
	}

	res := Compute(in)
	if e.cache != nil {
		e.cache.Add(in, res)
	}
	return success(res, msgs), false
}

// success wraps res with any warnings raised while validating.
func success(res model.CalculationResult, warnings []model.CalculationMessage) model.Outcome {
	if warnings == nil {
		warnings = []model.CalculationMessage{}
	}
	return model.Outcome{Errors: map[string]string{}, Messages: warnings, Result: &res}
}
