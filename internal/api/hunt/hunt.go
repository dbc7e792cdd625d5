package hunt

import (
	admindto "bonushunt_backend/internal/api/dto/admin"
	"bonushunt_backend/internal/converter"
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
	Serv service.HuntService
}

type Handler struct {
	serv service.HuntService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List - публичный список хантов, опциональный фильтр ?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *model.HuntStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		if !model.ValidHuntStatus(raw) {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}
		s := model.HuntStatus(raw)
		status = &s
	}

	hunts, err := h.serv.ListHunts(r.Context(), status)
	if err != nil {
		log.Println("List hunts error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHuntResponses(hunts))
}

// Get - страница ханта: хант + слоты + живая статистика
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	details, err := h.serv.GetHunt(r.Context(), huntID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHuntDetailsResponse(*details))
}

// Create - создание ханта админом
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[admindto.HuntRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hunt, err := converter.ToHuntModel(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.serv.CreateHunt(r.Context(), hunt)
	if err != nil {
		log.Println("Create hunt error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToHuntResponse(*created))
}

// Update - редактирование ханта админом
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[admindto.HuntRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hunt, err := converter.ToHuntModel(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hunt.ID = huntID

	updated, err := h.serv.UpdateHunt(r.Context(), hunt)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHuntResponse(*updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	if err := h.serv.DeleteHunt(r.Context(), huntID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddSlot - добавление одного слота в хант
func (h *Handler) AddSlot(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[admindto.SlotRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := converter.ToSlotInput(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slot, err := h.serv.AddSlot(r.Context(), huntID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSlotResponse(*slot))
}

// QuickAddSlots - массовое добавление слотов из формы быстрого ввода
func (h *Handler) QuickAddSlots(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[admindto.QuickAddSlotsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inputs, err := converter.ToSlotInputs(payload.Slots)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slots, err := h.serv.QuickAddSlots(r.Context(), huntID, inputs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSlotResponses(slots))
}

// UpdateSlot - запись ставки/выигрыша слота
func (h *Handler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(chi.URLParam(r, "slotID"))
	if err != nil {
		http.Error(w, "invalid slot id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[admindto.SlotRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := converter.ToSlotInput(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slot, err := h.serv.UpdateSlot(r.Context(), slotID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotResponse(*slot))
}

func (h *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(chi.URLParam(r, "slotID"))
	if err != nil {
		http.Error(w, "invalid slot id", http.StatusBadRequest)
		return
	}

	if err := h.serv.DeleteSlot(r.Context(), slotID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderSlots - смена порядка отображения слотов
func (h *Handler) ReorderSlots(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[admindto.ReorderSlotsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orderedIDs := make([]uuid.UUID, len(payload.SlotIDs))
	for i, raw := range payload.SlotIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid slot id in order list", http.StatusBadRequest)
			return
		}
		orderedIDs[i] = id
	}

	if err := h.serv.ReorderSlots(r.Context(), huntID, orderedIDs); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PickWinner - ручной запуск определения победителя.
// Повторный вызов для уже рассчитанного ханта - безопасный no-op
func (h *Handler) PickWinner(w http.ResponseWriter, r *http.Request) {
	huntID, err := uuid.Parse(chi.URLParam(r, "huntID"))
	if err != nil {
		http.Error(w, "invalid hunt id", http.StatusBadRequest)
		return
	}

	result, err := h.serv.PickWinner(r.Context(), huntID)
	if err != nil {
		if errors.Is(err, model.ErrWinnerAlreadyDetermined) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
				"status": "winner already determined",
			})
			return
		}
		writeServiceError(w, err)
		return
	}

	if result == nil {
		resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
			"status": "no guesses, hunt left without winner",
		})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(*result))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrHuntNotFound), errors.Is(err, model.ErrSlotNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrNoEndingBalance):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Println("Hunt handler error:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
