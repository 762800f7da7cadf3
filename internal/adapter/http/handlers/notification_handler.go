package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	response "fieldserve/internal/adapter/http/dto/response"
	"fieldserve/internal/usecase"
	"fieldserve/pkg"
)

const defaultNotificationLimit = 50

// NotificationHandler serves the tenant's in-app notification feed.

type NotificationHandler struct {
	feed usecase.INotificationFeed
}

func NewNotificationHandler(feed usecase.INotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// ListNotifications godoc
// @Summary      List recent in-app notifications
// @Tags         notifications
// @Produce      json
// @Param        X-Company-ID  header  string  true  "Tenant id"
// @Param        limit  query  int  false  "Max events to return"
// @Success      200  {array}  response.NotificationResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	company, ok := companyID(c)
	if !ok {
		return
	}

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.feed.ListByCompany(c.Request.Context(), company, limit)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationEvents(events))
}
