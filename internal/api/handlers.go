package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/taxcmp/internal/breakeven"
	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// ScenarioRequest is the body of compare and evaluate requests. Amounts may
// be JSON numbers or strings.
type ScenarioRequest struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	Currency       string          `json:"currency"`
	EntityType     string          `json:"entityType"`
	JurisdictionID string          `json:"jurisdictionId"`
}

// BreakEvenRequest is the body of break-even requests. Without a
// jurisdictionId every jurisdiction is solved.
type BreakEvenRequest struct {
	TargetNet      decimal.Decimal `json:"targetNet"`
	Expenses       decimal.Decimal `json:"expenses"`
	Currency       string          `json:"currency"`
	EntityType     string          `json:"entityType"`
	JurisdictionID string          `json:"jurisdictionId"`
}

// BreakEvenResponse lists the revenue required per jurisdiction
type BreakEvenResponse struct {
	Request breakeven.Request  `json:"request"`
	Results []breakeven.Result `json:"results"`
}

// JurisdictionSummary is one entry of the jurisdiction listing
type JurisdictionSummary struct {
	ID           string              `json:"id"`
	Country      string              `json:"country"`
	Flag         string              `json:"flag"`
	CurrencyCode domain.CurrencyCode `json:"currencyCode"`
	CITRate      decimal.Decimal     `json:"citRate"`
	TopPITRate   decimal.Decimal     `json:"topPitRate"`
	SalesTax     string              `json:"salesTax"`
}

// ListJurisdictionsResponse lists every supported jurisdiction
type ListJurisdictionsResponse struct {
	Jurisdictions []JurisdictionSummary `json:"jurisdictions"`
}

// ConvertResponse is the result of a currency conversion
type ConvertResponse struct {
	Amount decimal.Decimal     `json:"amount"`
	From   domain.CurrencyCode `json:"from"`
	To     domain.CurrencyCode `json:"to"`
	Result decimal.Decimal     `json:"result"`
}

// ListJurisdictions returns a summary of every jurisdiction in registry order
func (s *Server) ListJurisdictions(c *gin.Context) {
	all := s.engine.Registry.All()
	resp := ListJurisdictionsResponse{Jurisdictions: make([]JurisdictionSummary, 0, len(all))}
	for _, j := range all {
		p := j.Profile
		resp.Jurisdictions = append(resp.Jurisdictions, JurisdictionSummary{
			ID:           p.ID,
			Country:      p.Country,
			Flag:         p.Flag,
			CurrencyCode: p.CurrencyCode,
			CITRate:      p.CIT.StandardRate,
			TopPITRate:   p.TopPITRate(),
			SalesTax:     fmt.Sprintf("%s %s%%", p.SalesTax.Name, p.SalesTax.StandardRate),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetJurisdiction returns the full reference profile for one jurisdiction
func (s *Server) GetJurisdiction(c *gin.Context) {
	j, err := s.engine.Registry.Lookup(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, j.Profile)
}

// Compare ranks every jurisdiction for the posted scenario
func (s *Server) Compare(c *gin.Context) {
	scenario, _, ok := s.bindScenario(c)
	if !ok {
		return
	}

	set, err := s.engine.Compare(c.Request.Context(), scenario)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// Evaluate returns one jurisdiction's detailed result for the posted scenario
func (s *Server) Evaluate(c *gin.Context) {
	scenario, id, ok := s.bindScenario(c)
	if !ok {
		return
	}
	if strings.TrimSpace(id) == "" {
		s.respondError(c, badRequest("jurisdictionId is required"))
		return
	}

	ev, err := s.engine.Evaluate(c.Request.Context(), scenario, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// BreakEven finds the revenue that leaves the posted target net profit
func (s *Server) BreakEven(c *gin.Context) {
	var body BreakEvenRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.respondError(c, badRequest("invalid request body: "+err.Error()))
		return
	}
	code, entity, err := s.resolveDefaults(body.Currency, body.EntityType)
	if err != nil {
		s.respondError(c, err)
		return
	}

	req := breakeven.Request{
		JurisdictionID: body.JurisdictionID,
		TargetNet:      body.TargetNet,
		Expenses:       body.Expenses,
		Currency:       code,
		EntityType:     entity,
	}
	if err := req.Validate(); err != nil {
		s.respondError(c, badRequest(err.Error()))
		return
	}

	var results []breakeven.Result
	if strings.TrimSpace(req.JurisdictionID) == "" {
		results, err = s.solver.SolveAll(c.Request.Context(), req)
	} else {
		var res *breakeven.Result
		if res, err = s.solver.Solve(c.Request.Context(), req); err == nil {
			results = []breakeven.Result{*res}
		}
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BreakEvenResponse{Request: req, Results: results})
}

// Convert converts ?amount= from ?from= to ?to=
func (s *Server) Convert(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		s.respondError(c, badRequest("amount must be a decimal number"))
		return
	}
	from, err := domain.ParseCurrencyCode(c.DefaultQuery("from", string(s.opts.DefaultCurrency)))
	if err != nil {
		s.respondError(c, err)
		return
	}
	to, err := domain.ParseCurrencyCode(c.Query("to"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	result, err := s.engine.Converter.Convert(amount, from, to)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConvertResponse{Amount: amount, From: from, To: to, Result: result})
}

func (s *Server) bindScenario(c *gin.Context) (compare.Scenario, string, bool) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, badRequest("invalid request body: "+err.Error()))
		return compare.Scenario{}, "", false
	}

	code, entity, err := s.resolveDefaults(req.Currency, req.EntityType)
	if err != nil {
		s.respondError(c, err)
		return compare.Scenario{}, "", false
	}

	scenario := compare.Scenario{
		Revenue:    req.Revenue,
		Expenses:   req.Expenses,
		Currency:   code,
		EntityType: entity,
	}
	return scenario, req.JurisdictionID, true
}

// resolveDefaults parses the optional currency and entity type of a request
func (s *Server) resolveDefaults(currency, entityType string) (domain.CurrencyCode, domain.EntityType, error) {
	code, entity := s.opts.DefaultCurrency, s.opts.DefaultEntity
	var err error
	if currency != "" {
		if code, err = domain.ParseCurrencyCode(currency); err != nil {
			return "", entity, err
		}
	}
	if entityType != "" {
		if entity, err = domain.ParseEntityType(entityType); err != nil {
			return "", entity, err
		}
	}
	return code, entity, nil
}

type requestError struct{ msg string }

func (e requestError) Error() string { return e.msg }

func badRequest(msg string) error { return requestError{msg: msg} }

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	var reqErr requestError
	switch {
	case errors.Is(err, domain.ErrUnknownJurisdiction):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownCurrency),
		errors.Is(err, domain.ErrUnknownEntityType),
		errors.As(err, &reqErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", zap.String("correlation_id", GetCorrelationID(c)), zap.Error(err))
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, CorrelationID: GetCorrelationID(c)})
}
