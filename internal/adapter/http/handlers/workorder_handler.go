package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "fieldserve/internal/adapter/http/dto/request"
	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/pricing"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"
)

// CompanyIDHeader carries the tenant for every request. There is no fallback:
// a missing tenant is a client error, never "all tenants".
const CompanyIDHeader = "X-Company-ID"

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errMissingCompanyID    = pkg.NewDomainErrorSimple("MISSING_COMPANY_ID", "Missing "+CompanyIDHeader+" header", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for quote CRUD. Status changes are
// handled by TransitionHandler; this handler never writes a status.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func companyID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(CompanyIDHeader))
	if id == "" {
		c.JSON(errMissingCompanyID.HTTPStatus, errMissingCompanyID.ToHTTPError())
		return "", false
	}
	return id, true
}

// CreateQuote godoc
// @Summary      Create a draft quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        quote  body  request.WorkOrderRequest  true  "Quote payload"
// @Success      201  {object}  response.WorkOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/quotes [post]
func (h *WorkOrderHandler) CreateQuote(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDraft(c.Request.Context(), company, payload.ToEntity())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

// GetQuote godoc
// @Summary      Fetch one quote
// @Tags         quotes
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        id  path  string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/quotes/{id} [get]
func (h *WorkOrderHandler) GetQuote(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	wo, err := h.usecase.GetByID(c.Request.Context(), company, c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// UpdateQuote godoc
// @Summary      Edit a draft quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        id  path  string  true  "Work order id"
// @Param        quote  body  request.WorkOrderRequest  true  "Quote payload"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/quotes/{id} [put]
func (h *WorkOrderHandler) UpdateQuote(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()
	draft.ID = c.Param("id")

	updated, err := h.usecase.UpdateDraft(c.Request.Context(), company, draft)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

// ListQuotes godoc
// @Summary      List the tenant's quotes
// @Tags         quotes
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        status  query  []string  false  "Status filter"
// @Success      200  {array}  response.WorkOrderResponse
// @Router       /v1/quotes [get]
func (h *WorkOrderHandler) ListQuotes(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	var statuses []entities.Status
	for _, s := range c.QueryArray("status") {
		statuses = append(statuses, entities.Status(s))
	}

	list, err := h.usecase.ListByCompany(c.Request.Context(), company, statuses)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.WorkOrderResponse, 0, len(list))
	for _, wo := range list {
		out = append(out, response.FromWorkOrder(wo))
	}
	c.JSON(http.StatusOK, out)
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidPricingModel),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Only draft quotes can be edited directly", http.StatusConflict)
	case errors.Is(err, pricing.ErrNegativeAmount),
		errors.Is(err, pricing.ErrMilestoneUnpriced),
		errors.Is(err, pricing.ErrUnknownPricingModel):
		return pkg.NewDomainError("PRICING_ERROR", "Quote pricing could not be calculated", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
