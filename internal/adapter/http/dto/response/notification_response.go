package response

import (
	"time"

	"fieldserve/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
	RelatedID string    `json:"related_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotificationEvents(events []entities.NotificationEvent) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NotificationResponse{
			ID:        e.ID,
			Category:  string(e.Category),
			Severity:  string(e.Severity),
			RelatedID: e.RelatedID,
			Title:     e.Title,
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
