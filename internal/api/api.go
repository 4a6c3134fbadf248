package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Fizik0/MarketUnitCalc/internal/benchmark"
	"github.com/Fizik0/MarketUnitCalc/internal/entity"
	"github.com/Fizik0/MarketUnitCalc/internal/repository"
	"github.com/Fizik0/MarketUnitCalc/internal/service"
)

// AnalysisHandler handles analysis and benchmark requests.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Analyze computes the full report for a record --> POST /analysis
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var in entity.InputRecord
	if err := c.Bind(&in); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}

	if verr := validateRecord(&in); verr != nil {
		return c.JSON(400, map[string]string{"error": verr.Message, "field": verr.Field})
	}

	report, err := h.analysisService.Analyze(c.Request().Context(), &in)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, report)
}

// RunScenarios recomputes the economics under custom deltas --> POST /analysis/scenarios
func (h *AnalysisHandler) RunScenarios(c echo.Context) error {
	var req struct {
		Record    entity.InputRecord              `json:"record"`
		Scenarios map[string]entity.ScenarioDelta `json:"scenarios"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}

	if verr := validateRecord(&req.Record); verr != nil {
		return c.JSON(400, map[string]string{"error": verr.Message, "field": verr.Field})
	}

	deltas := req.Scenarios
	if len(deltas) == 0 {
		deltas = entity.StandardScenarios()
	}

	results := h.analysisService.RunScenarios(c.Request().Context(), &req.Record, deltas)
	return c.JSON(200, results)
}

// GetBenchmark returns fee and category benchmarks --> GET /benchmarks/:marketplace/:category
// Optional query params: weight (kg) adds a fulfillment estimate, month (1-12)
// overrides the seasonal factor month, defaulting to the current one.
func (h *AnalysisHandler) GetBenchmark(c echo.Context) error {
	marketplace := c.Param("marketplace")
	category := c.Param("category")

	month := int(time.Now().Month())
	if m := c.QueryParam("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return c.JSON(400, map[string]string{"error": "month must be between 1 and 12", "field": "month"})
		}
		month = parsed
	}

	resp := map[string]interface{}{
		"marketplace":     marketplace,
		"category":        category,
		"commission":      benchmark.CommissionFor(marketplace, category),
		"benchmark":       benchmark.BenchmarkFor(marketplace, category),
		"surcharge":       benchmark.SurchargeRate(marketplace),
		"seasonal_factor": benchmark.SeasonalFactor(month),
	}

	if w := c.QueryParam("weight"); w != "" {
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil || weight < 0 {
			return c.JSON(400, map[string]string{"error": "weight must be a non-negative number", "field": "weight"})
		}
		resp["fulfillment_estimate"] = benchmark.FulfillmentCost(weight)
	}

	return c.JSON(200, resp)
}

// CalculationHandler handles saved-calculation requests.
type CalculationHandler struct {
	calculationService *service.CalculationService
}

// NewCalculationHandler creates a new CalculationHandler instance.
func NewCalculationHandler(calculationService *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{calculationService: calculationService}
}

// SaveCalculation saves a wizard session --> POST /calculations
func (h *CalculationHandler) SaveCalculation(c echo.Context) error {
	var calc entity.Calculation
	if err := c.Bind(&calc); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}

	if calc.Name == "" {
		return c.JSON(400, map[string]string{"error": "name is required", "field": "name"})
	}

	saved, err := h.calculationService.SaveCalculation(c.Request().Context(), &calc)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, saved)
}

// UpdateCalculation overwrites a saved calculation --> PUT /calculations/:id
func (h *CalculationHandler) UpdateCalculation(c echo.Context) error {
	var calc entity.Calculation
	if err := c.Bind(&calc); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	calc.ID = c.Param("id")

	if calc.Name == "" {
		return c.JSON(400, map[string]string{"error": "name is required", "field": "name"})
	}

	updated, err := h.calculationService.UpdateCalculation(c.Request().Context(), &calc)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "calculation not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, updated)
}

// GetCalculation loads a saved calculation --> GET /calculations/:id
func (h *CalculationHandler) GetCalculation(c echo.Context) error {
	calc, err := h.calculationService.GetCalculation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "calculation not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, calc)
}

// ListCalculations lists saved calculations --> GET /calculations
func (h *CalculationHandler) ListCalculations(c echo.Context) error {
	calcs, err := h.calculationService.ListCalculations(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	if calcs == nil {
		calcs = []entity.Calculation{}
	}
	return c.JSON(200, calcs)
}

// DeleteCalculation removes a saved calculation --> DELETE /calculations/:id
func (h *CalculationHandler) DeleteCalculation(c echo.Context) error {
	err := h.calculationService.DeleteCalculation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"error": "calculation not found"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"status": "deleted"})
}
