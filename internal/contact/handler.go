// Package contact exposes the transactional email endpoints behind the
// site's booking, contact, and maintenance forms.
package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/internal/notify"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// Mailer is the slice of notify.Service these endpoints use.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, d notify.BookingEmailData) error
	SendBookingAlert(ctx context.Context, d notify.BookingEmailData) error
	SendContactAcknowledgment(ctx context.Context, d notify.ContactEmailData) error
	SendContactAlert(ctx context.Context, d notify.ContactEmailData) error
	SendMaintenanceAcknowledgment(ctx context.Context, d notify.MaintenanceEmailData) error
	SendMaintenanceAlert(ctx context.Context, d notify.MaintenanceEmailData) error
}

var _ Mailer = (*notify.Service)(nil)

// Handler serves the six email endpoints.
type Handler struct {
	mailer Mailer
	logger *logging.Logger
}

// NewHandler creates a contact HTTP handler.
func NewHandler(mailer Mailer, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{mailer: mailer, logger: logger}
}

func (h *Handler) decodeBooking(w http.ResponseWriter, r *http.Request) (*bookingEmailRequest, bool) {
	var req bookingEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return nil, false
	}
	if req.Name == "" || req.Email == "" || req.Date == "" || req.Time == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "name, email, date and time are required",
		})
		return nil, false
	}
	return &req, true
}

func (r *bookingEmailRequest) data() notify.BookingEmailData {
	return notify.BookingEmailData{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		CompanyName:    r.CompanyName,
		Services:       r.Services,
		Date:           r.Date,
		Time:           r.Time,
		Duration:       r.Duration,
		Notes:          r.Notes,
		AdditionalInfo: r.AdditionalInfo,
	}
}

// SendUserEmail handles POST /api/send-user-email.
func (h *Handler) SendUserEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBooking(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendBookingConfirmation(r.Context(), req.data()); err != nil {
		h.logger.Error("send-user-email failed", "error", err, "to", req.Email)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "failed to send confirmation email",
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "confirmation email sent"})
}

// SendAdminEmail handles POST /api/send-admin-email.
func (h *Handler) SendAdminEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBooking(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendBookingAlert(r.Context(), req.data()); err != nil {
		h.logger.Error("send-admin-email failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "failed to send booking notification",
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "booking notification sent"})
}

func (h *Handler) decodeContact(w http.ResponseWriter, r *http.Request) (*contactEmailRequest, bool) {
	var req contactEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return nil, false
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "name, email and message are required",
		})
		return nil, false
	}
	return &req, true
}

func (r *contactEmailRequest) data() notify.ContactEmailData {
	return notify.ContactEmailData{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		Subject:     r.Subject,
		Message:     r.Message,
	}
}

// SendContactUserEmail handles POST /api/send-contact-user-email.
func (h *Handler) SendContactUserEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeContact(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendContactAcknowledgment(r.Context(), req.data()); err != nil {
		h.logger.Error("send-contact-user-email failed", "error", err, "to", req.Email)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "failed to send acknowledgment email",
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "acknowledgment email sent"})
}

// SendContactAdminEmail handles POST /api/send-contact-admin-email.
func (h *Handler) SendContactAdminEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeContact(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendContactAlert(r.Context(), req.data()); err != nil {
		h.logger.Error("send-contact-admin-email failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "failed to send contact notification",
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "contact notification sent"})
}

func (h *Handler) decodeMaintenance(w http.ResponseWriter, r *http.Request) (*maintenanceEmailRequest, bool) {
	var req maintenanceEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid JSON body"})
		return nil, false
	}
	if req.Name == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "name and email are required",
		})
		return nil, false
	}
	return &req, true
}

func (r *maintenanceEmailRequest) data() notify.MaintenanceEmailData {
	return notify.MaintenanceEmailData{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Plan:  r.Plan,
	}
}

// SendMaintenanceUserEmail handles POST /api/send-maintenance-user-email.
func (h *Handler) SendMaintenanceUserEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMaintenance(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendMaintenanceAcknowledgment(r.Context(), req.data()); err != nil {
		h.logger.Error("send-maintenance-user-email failed", "error", err, "to", req.Email)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// SendMaintenanceAdminEmail handles POST /api/send-maintenance-admin-email.
func (h *Handler) SendMaintenanceAdminEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMaintenance(w, r)
	if !ok {
		return
	}
	if err := h.mailer.SendMaintenanceAlert(r.Context(), req.data()); err != nil {
		h.logger.Error("send-maintenance-admin-email failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   apperrors.Message(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
