package routes

import (
	"github.com/gin-gonic/gin"

	"fieldserve/internal/adapter/http/handlers"
)

const (
	PathQuotes        = "/quotes"
	PathNotifications = "/notifications"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	workOrderHandler *handlers.WorkOrderHandler,
	transitionHandler *handlers.TransitionHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", workOrderHandler.CreateQuote)
		quotes.GET("", workOrderHandler.ListQuotes)
		quotes.GET("/:id", workOrderHandler.GetQuote)
		quotes.PUT("/:id", workOrderHandler.UpdateQuote)
		quotes.POST("/:id/transitions", transitionHandler.TransitionQuote)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
	}
}
