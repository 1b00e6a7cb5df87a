package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"caritasAPI/internal/models"
)

const maxLimit = 100

func positiveParam(r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// parsePage reads page and limit. Malformed or out of range values are field errors.
func parsePage(r *http.Request, defaultLimit int) (models.Page, []models.FieldError) {
	var fields []models.FieldError

	page, ok := positiveParam(r, "page", 1)
	if !ok {
		fields = append(fields, models.FieldError{Field: "page", Message: "Page must be a positive integer"})
	}

	limit, ok := positiveParam(r, "limit", defaultLimit)
	if !ok || limit > maxLimit {
		fields = append(fields, models.FieldError{Field: "limit", Message: "Limit must be between 1 and 100"})
	}

	return models.Page{Page: page, Limit: limit}, fields
}

// listFilter reads the allow-listed filters. Anything else in the query string is ignored.
func listFilter(r *http.Request) models.ListFilter {
	q := r.URL.Query()
	return models.ListFilter{
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Currency: q.Get("currency"),
	}
}

// pathID reads the {id} route variable. Routes constrain it to digits.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		writeError(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// page wraps parsePage and answers 400 itself on bad input.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, defaultLimit int) (models.Page, bool) {
	page, fields := parsePage(r, defaultLimit)
	if len(fields) > 0 {
		writeValidation(w, fields)
		return page, false
	}
	return page, true
}
