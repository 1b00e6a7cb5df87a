package handlers

import (
	"net/http"

	"caritasAPI/internal/models"
)

const donationAdminLimit = 20

func (h *Handlers) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	var in models.DonationInput
	if !h.decode(w, r, &in) {
		return
	}

	donation, err := h.DonationService.Submit(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{
		"message":  "Donation processed successfully",
		"donation": donation.Receipt(),
	}, http.StatusCreated)
}

func (h *Handlers) DonationSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.DonationService.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, summary, http.StatusOK)
}

func (h *Handlers) ListDonations(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r, donationAdminLimit)
	if !ok {
		return
	}

	donations, pagination, err := h.DonationService.ListAll(r.Context(), listFilter(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"donations": donations, "pagination": pagination}, http.StatusOK)
}

func (h *Handlers) DonationAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.DonationService.Analytics(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, analytics, http.StatusOK)
}

func (h *Handlers) DonationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DonationService.AdminStats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *Handlers) GetDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	donation, err := h.DonationService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"donation": donation}, http.StatusOK)
}

func (h *Handlers) UpdateDonationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.DonationStatusUpdate
	if !h.decode(w, r, &req) {
		return
	}

	donation, err := h.DonationService.UpdateStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"message": "Donation updated successfully", "donation": donation}, http.StatusOK)
}
