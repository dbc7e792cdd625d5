package notification

import (
	"bonushunt_backend/internal/middleware"
	"bonushunt_backend/internal/service"
	"bonushunt_backend/pkg/resp"
	"log"
	"net/http"
	"time"
)

type HandlerDeps struct {
	Serv service.NotificationService
}

type Handler struct {
	serv service.NotificationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// List - уведомления текущего пользователя
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	notifications, err := h.serv.ListForUser(r.Context(), userID)
	if err != nil {
		log.Println("List notifications error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		result[i] = notificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
