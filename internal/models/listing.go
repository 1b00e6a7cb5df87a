package models

type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(p Page, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// ListFilter holds the allow-listed query filters. Each resource reads only the fields it supports.
type ListFilter struct {
	Status   string
	Search   string
	Category string
	Currency string
}

type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}

type Stats struct {
	Total    int           `json:"total"`
	Recent   int           `json:"recent"`
	ByStatus []StatusCount `json:"by_status"`
}

type AuthorCount struct {
	Username string `json:"username" db:"username"`
	Count    int    `json:"count" db:"count"`
}

type NewsStats struct {
	Stats
	ByAuthor []AuthorCount `json:"by_author"`
}

type SkillCount struct {
	SkillCategory string `json:"skill_category" db:"skill_category"`
	Count         int    `json:"count" db:"count"`
}

type VolunteerStats struct {
	Stats
	BySkills []SkillCount `json:"by_skills"`
}

type DonationTotals struct {
	Donations int     `json:"donations" db:"donations"`
	Amount    float64 `json:"amount" db:"amount"`
	Average   float64 `json:"average" db:"average"`
}

type DonationRecent struct {
	Donations int     `json:"donations" db:"donations"`
	Amount    float64 `json:"amount" db:"amount"`
}

type CurrencyTotal struct {
	Currency string  `json:"currency" db:"currency"`
	Count    int     `json:"count" db:"count"`
	Total    float64 `json:"total" db:"total"`
}

type DonationSummary struct {
	Total      DonationTotals  `json:"total"`
	Recent     DonationRecent  `json:"recent"`
	ByCurrency []CurrencyTotal `json:"by_currency"`
}

type MonthlyTotal struct {
	Month string  `json:"month" db:"month"`
	Count int     `json:"count" db:"count"`
	Total float64 `json:"total" db:"total"`
}

type MethodTotal struct {
	PaymentMethod string  `json:"payment_method" db:"payment_method"`
	Count         int     `json:"count" db:"count"`
	Total         float64 `json:"total" db:"total"`
}

type DonorTotal struct {
	DonorName     string  `json:"donor_name" db:"donor_name"`
	DonationCount int     `json:"donation_count" db:"donation_count"`
	TotalAmount   float64 `json:"total_amount" db:"total_amount"`
}

type DonationAnalytics struct {
	MonthlyDonations []MonthlyTotal `json:"monthly_donations"`
	PaymentMethods   []MethodTotal  `json:"payment_methods"`
	TopDonors        []DonorTotal   `json:"top_donors"`
}

type DonationAdminStats struct {
	DonationSummary
	ByStatus []StatusCount `json:"by_status"`
}
