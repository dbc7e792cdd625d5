package leaderboard

import (
	"bonushunt_backend/internal/service"
	"bonushunt_backend/pkg/resp"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type entry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

// Top - лидерборд по очкам
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.serv.Top(r.Context())
	if err != nil {
		log.Println("Leaderboard error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]entry, len(profiles))
	for i, profile := range profiles {
		entries[i] = entry{
			Rank:     i + 1,
			UserID:   profile.ID.String(),
			Username: profile.Username,
			Points:   profile.Points,
		}
	}

	resp.WriteJSONResponse(w, http.StatusOK, entries)
}
