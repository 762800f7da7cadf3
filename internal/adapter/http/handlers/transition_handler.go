package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fieldserve/internal/adapter/http/dto/request"
	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/pricing"
	"fieldserve/internal/domain/status"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"
)

var errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)

// TransitionHandler drives the status change endpoint. The interesting
// response is the 422: when a transition needs captured data and the request
// did not (fully) provide it, the handler returns the capture contract so the
// client can render the right form and retry.

type TransitionHandler struct {
	orchestrator usecase.ITransitionOrchestrator
}

func NewTransitionHandler(orch usecase.ITransitionOrchestrator) *TransitionHandler {
	return &TransitionHandler{orchestrator: orch}
}

// TransitionQuote godoc
// @Summary      Change a quote's status
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        id  path  string  true  "Work order id"
// @Param        transition  body  request.TransitionRequest  true  "Requested status and capture payload"
// @Success      200  {object}  response.TransitionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  response.CaptureRequiredResponse
// @Router       /v1/quotes/{id}/transitions [post]
func (h *TransitionHandler) TransitionQuote(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	t, err := h.orchestrator.Begin(ctx, company, c.Param("id"), entities.Status(payload.Status))
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if t.State() == usecase.TransitionAwaitingCapture {
		if payload.Capture == nil {
			c.JSON(http.StatusUnprocessableEntity, response.NewCaptureRequired(t.CaptureKind(), nil))
			return
		}
		if err := t.Supply(*payload.Capture); err != nil {
			var incomplete *status.IncompleteCaptureError
			if errors.As(err, &incomplete) {
				c.JSON(http.StatusUnprocessableEntity, response.NewCaptureRequired(incomplete.Kind, incomplete.Missing))
				return
			}
			appErr := mapTransitionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	committed, err := t.Commit(ctx, usecase.CommitInput{
		ReplaceChildren: payload.ReplacesChildren(),
		Items:           request.LineItemsToEntities(payload.Items),
		Milestones:      request.MilestonesToEntities(payload.Milestones),
	})
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TransitionResponse{
		WorkOrder:   response.FromWorkOrder(committed),
		ScheduleNow: t.ScheduleNow(),
	})
}

func mapTransitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, status.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, status.ErrRenewalDateNotFuture):
		return pkg.NewDomainErrorSimple("RENEWAL_DATE_NOT_FUTURE", "The new expiration date must be in the future", http.StatusUnprocessableEntity)
	case errors.Is(err, status.ErrUnknownRejectionReason):
		return pkg.NewDomainErrorSimple("UNKNOWN_REJECTION_REASON", "Unknown rejection reason", http.StatusUnprocessableEntity)
	case errors.Is(err, status.ErrUnknownExpiredAction):
		return pkg.NewDomainErrorSimple("UNKNOWN_EXPIRED_ACTION", "Unknown expired quote action", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCaptureRequired):
		return pkg.NewDomainErrorSimple("CAPTURE_REQUIRED", "This status change requires additional information", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransitionClosed):
		return pkg.NewDomainErrorSimple("TRANSITION_CLOSED", "Transition already committed or aborted", http.StatusConflict)
	case errors.Is(err, pricing.ErrNegativeAmount),
		errors.Is(err, pricing.ErrMilestoneUnpriced),
		errors.Is(err, pricing.ErrUnknownPricingModel):
		return pkg.NewDomainError("PRICING_ERROR", "Quote pricing could not be calculated", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
