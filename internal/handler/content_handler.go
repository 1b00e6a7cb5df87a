package handlers

import (
	"encoding/json"
	"net/http"

	"caritasAPI/internal/models"
)

const contactAdminLimit = 20

func (h *Handlers) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.SettingService.Public(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"settings": settings}, http.StatusOK)
}

func (h *Handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.SettingsUpdate
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid settings format", http.StatusBadRequest)
		return
	}

	if err := h.SettingService.Update(r.Context(), req.Settings); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, ErrorResponse{Message: "Settings updated successfully"}, http.StatusOK)
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if !h.decode(w, r, &in) {
		return
	}

	message, err := h.ContactService.Submit(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Message sent successfully", "id": message.ID}, http.StatusCreated)
}

func (h *Handlers) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, contactAdminLimit)
	if !ok {
		return
	}

	messages, pagination, err := h.ContactService.ListAll(r.Context(), listFilter(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"messages": messages, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) ContactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ContactService.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *Handlers) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	message, err := h.ContactService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"contact_message": message}, http.StatusOK)
}

func (h *Handlers) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ContactStatusUpdate
	if !h.decode(w, r, &req) {
		return
	}

	message, err := h.ContactService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Message status updated successfully", "contact_message": message}, http.StatusOK)
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.Content.Home(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, home, http.StatusOK)
}
