package handlers

import (
	"net/http"
	"strconv"

	"caritasAPI/internal/middleware"
	"caritasAPI/internal/models"
)

const (
	newsPublicLimit = 10
	newsAdminLimit  = 20
	latestNewsLimit = 5
)

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, newsPublicLimit)
	if !ok {
		return
	}

	news, pagination, err := h.NewsService.ListPublished(r.Context(), models.ListFilter{Category: r.URL.Query().Get("category")}, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"news": news, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) LatestNews(w http.ResponseWriter, r *http.Request) {
	limit := latestNewsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			writeValidation(w, []models.FieldError{{Field: "limit", Message: "Limit must be between 1 and 100"}})
			return
		}
		limit = n
	}

	articles, err := h.NewsService.Latest(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"articles": articles}, http.StatusOK)
}

func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	article, err := h.NewsService.GetPublished(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"article": article}, http.StatusOK)
}

func (h *Handlers) ListAllNews(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, newsAdminLimit)
	if !ok {
		return
	}

	articles, pagination, err := h.NewsService.ListAll(r.Context(), listFilter(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"articles": articles, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) NewsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.NewsService.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *Handlers) GetNewsAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	article, err := h.NewsService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"article": article}, http.StatusOK)
}

func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var in models.NewsInput
	if !h.decode(w, r, &in) {
		return
	}

	article, err := h.NewsService.Create(r.Context(), claims.UserID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Article created successfully", "article": article}, http.StatusCreated)
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in models.NewsInput
	if !h.decode(w, r, &in) {
		return
	}

	article, err := h.NewsService.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Article updated successfully", "article": article}, http.StatusOK)
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.NewsService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, ErrorResponse{Message: "Article deleted successfully"}, http.StatusOK)
}
