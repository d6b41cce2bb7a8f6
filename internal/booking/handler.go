package booking

import (
	"encoding/json"
	"net/http"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/internal/gcal"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// Handler exposes the booking pipeline over HTTP.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a booking HTTP handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// CreateMeeting handles POST /api/create-meeting.
func (h *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("create-meeting: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, Result{Success: false, Error: "invalid JSON body"})
		return
	}

	result, err := h.svc.Book(r.Context(), req)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= 500 {
			h.logger.Error("create-meeting failed", "error", err, "kind", apperrors.KindOf(err))
		} else {
			h.logger.Warn("create-meeting rejected", "error", err)
		}
		writeJSON(w, status, Result{Success: false, Error: apperrors.Message(err)})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// BookedSlots handles GET /api/booked-slots?startDate=...&endDate=...
func (h *Handler) BookedSlots(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "startDate and endDate are required",
		})
		return
	}

	slots, err := h.svc.BookedSlots(r.Context(), startDate, endDate)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": apperrors.Message(err)})
			return
		}
		h.logger.Error("booked-slots failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "failed to fetch booked slots",
			"details": apperrors.Message(err),
		})
		return
	}

	if slots == nil {
		slots = []gcal.BookedSlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
