package handlers

import (
	"net/http"

	"caritasAPI/internal/models"
)

const programLimit = 50

func (h *Handlers) ListPrograms(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, programLimit)
	if !ok {
		return
	}

	programs, pagination, err := h.ProgramService.ListActive(r.Context(), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"programs": programs, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	program, err := h.ProgramService.GetActive(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"program": program}, http.StatusOK)
}

func (h *Handlers) ListAllPrograms(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, programLimit)
	if !ok {
		return
	}

	programs, pagination, err := h.ProgramService.ListAll(r.Context(), listFilter(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"programs": programs, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) ProgramStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ProgramService.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *Handlers) GetProgramAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	program, err := h.ProgramService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"program": program}, http.StatusOK)
}

func (h *Handlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var in models.ProgramInput
	if !h.decode(w, r, &in) {
		return
	}

	program, err := h.ProgramService.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Program created successfully", "program": program}, http.StatusCreated)
}

func (h *Handlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in models.ProgramInput
	if !h.decode(w, r, &in) {
		return
	}

	program, err := h.ProgramService.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Program updated successfully", "program": program}, http.StatusOK)
}

func (h *Handlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ProgramService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, ErrorResponse{Message: "Program deleted successfully"}, http.StatusOK)
}
