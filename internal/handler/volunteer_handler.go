package handlers

import (
	"bytes"
	"net/http"

	"caritasAPI/internal/models"
)

const volunteerAdminLimit = 20

func (h *Handlers) ApplyVolunteer(w http.ResponseWriter, r *http.Request) {
	var in models.VolunteerInput
	if !h.decode(w, r, &in) {
		return
	}

	volunteer, err := h.VolunteerService.Apply(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{
		"message":   "Volunteer application submitted successfully",
		"volunteer": volunteer.Receipt(),
	}, http.StatusCreated)
}

func (h *Handlers) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, volunteerAdminLimit)
	if !ok {
		return
	}

	volunteers, pagination, err := h.VolunteerService.ListAll(r.Context(), listFilter(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"volunteers": volunteers, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) VolunteerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.VolunteerService.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

// ExportVolunteers renders the CSV into memory first so a store failure still gets a JSON error.
func (h *Handlers) ExportVolunteers(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.VolunteerService.ExportCSV(r.Context(), &buf); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=volunteers.csv")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handlers) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	volunteer, err := h.VolunteerService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"volunteer": volunteer}, http.StatusOK)
}

func (h *Handlers) UpdateVolunteerStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.VolunteerStatusUpdate
	if !h.decode(w, r, &req) {
		return
	}

	volunteer, err := h.VolunteerService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Volunteer status updated successfully", "volunteer": volunteer}, http.StatusOK)
}

func (h *Handlers) DeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.VolunteerService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, ErrorResponse{Message: "Volunteer deleted successfully"}, http.StatusOK)
}
