package handlers

import (
	"net/http"

	"loadhaul/internal/domain"
	"loadhaul/internal/earnings"
	"loadhaul/internal/fuel"
	"loadhaul/internal/geo"
	"loadhaul/internal/http/middleware"
	"loadhaul/internal/services"

	"github.com/gin-gonic/gin"
)

// EstimateHandler wires the engine into the /api/estimates and /api/summaries
// routes. Geo is shared so the ZIP cache survives across requests.
type EstimateHandler struct {
	Geo    *geo.Resolver
	Prices fuel.PriceResolver
	Remote *domain.RemoteEstimateConfig
}

func (h EstimateHandler) service(c *gin.Context) services.EstimateService {
	rid := middleware.GetRequestID(c)
	return services.EstimateService{
		Geo:       h.Geo,
		Fuel:      fuel.Estimator{Prices: h.Prices, RequestID: rid},
		Remote:    h.Remote,
		RequestID: rid,
	}
}

type mileageRequest struct {
	OriginZip    string `json:"origin_zip" binding:"required"`
	DestZip      string `json:"dest_zip" binding:"required"`
	VehicleClass string `json:"vehicle_class"`
	DepartAtMs   int64  `json:"depart_at_ms"`
}

// POST /api/estimates/mileage
func (h EstimateHandler) Mileage(c *gin.Context) {
	var req mileageRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	out, err := h.service(c).EstimateMileageFromZips(
		c.Request.Context(),
		req.OriginZip,
		req.DestZip,
		domain.VehicleClass(req.VehicleClass),
		req.DepartAtMs,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type fuelRequest struct {
	Load   domain.LoadInput    `json:"load" binding:"required"`
	Driver *domain.FuelProfile `json:"driver"`
}

// POST /api/estimates/fuel
//
// Remote pricing failures never surface here; the response always carries a
// usable estimate and Method reports which tier produced it.
func (h EstimateHandler) Fuel(c *gin.Context) {
	var req fuelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	est := h.service(c).FetchFuelEstimate(c.Request.Context(), req.Load, req.Driver)
	c.JSON(http.StatusOK, est)
}

type breakdownRequest struct {
	Load    domain.LoadInput    `json:"load" binding:"required"`
	Driver  *domain.FuelProfile `json:"driver"`
	FeeRate *float64            `json:"fee_rate"`
}

type breakdownResponse struct {
	Breakdown domain.EarningsBreakdown `json:"breakdown"`
	Fuel      domain.FuelEstimate      `json:"fuel"`
}

// POST /api/estimates/breakdown
func (h EstimateHandler) Breakdown(c *gin.Context) {
	var req breakdownRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	feeRate := earnings.DefaultFeeRate
	if req.FeeRate != nil {
		feeRate = *req.FeeRate
	}

	bd, est, err := h.service(c).CalculateLoadCostBreakdown(c.Request.Context(), req.Load, req.Driver, feeRate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdownResponse{Breakdown: bd, Fuel: est})
}

type monthlyRequest struct {
	Breakdowns []domain.EarningsBreakdown `json:"breakdowns" binding:"required"`
	Period     string                     `json:"period"`
}

// POST /api/summaries/monthly
func (h EstimateHandler) MonthlySummary(c *gin.Context) {
	var req monthlyRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.service(c).CalculateMonthlyNetSummary(req.Breakdowns))
}

// POST /api/summaries/monthly/statement
func (h EstimateHandler) MonthlyStatement(c *gin.Context) {
	var req monthlyRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	summary := h.service(c).CalculateMonthlyNetSummary(req.Breakdowns)
	svc := services.StatementService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.MonthlyStatement(summary, req.Period)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
