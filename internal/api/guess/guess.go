package guess

import (
	dto "bonushunt_backend/internal/api/dto/guess"
	"bonushunt_backend/internal/converter"
	"bonushunt_backend/internal/middleware"
	"bonushunt_backend/internal/model"
	"bonushunt_backend/internal/service"
	"bonushunt_backend/pkg/req"
	"bonushunt_backend/pkg/resp"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HandlerDeps struct {
	Serv service.GuessService
}

type Handler struct {
	serv service.GuessService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Submit - подача прогноза авторизованным пользователем
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SubmitGuessRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	guess, err := converter.ToGuessModel(payload, huntID, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.serv.Submit(r.Context(), guess)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrHuntNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, model.ErrGuessExists), errors.Is(err, model.ErrGuessingClosed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Println("Submit guess error:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGuessResponse(*created))
}

// List - прогнозы ханта в порядке подачи
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	guesses, err := h.serv.ListByHunt(r.Context(), huntID)
	if err != nil {
		if errors.Is(err, model.ErrHuntNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("List guesses error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGuessResponses(guesses))
}
