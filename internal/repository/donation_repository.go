package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const donationColumns = `id, donor_name, donor_email, amount, currency, payment_method, payment_status,
	payment_id, message, is_anonymous, created_at`

const anonymousDonor = "Anonymous"

type donationRepository struct {
	tableStats
	db *database.DB
}

func NewDonationRepository(db *database.DB) DonationRepository {
	return &donationRepository{
		tableStats: tableStats{db: db, table: "donations", statusColumn: "payment_status"},
		db:         db,
	}
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	donation.CreatedAt = time.Now().UTC()

	id, err := r.db.Insert(ctx, `
		INSERT INTO donations (donor_name, donor_email, amount, currency, payment_method, payment_status,
			payment_id, message, is_anonymous, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		donation.DonorName, donation.DonorEmail, donation.Amount, donation.Currency, donation.PaymentMethod,
		donation.PaymentStatus, donation.PaymentID, donation.Message, donation.IsAnonymous, donation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	donation.ID = id
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id int64) (*models.Donation, error) {
	var donation models.Donation

	err := r.db.FetchOne(ctx, &donation, `SELECT `+donationColumns+` FROM donations WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "donation", id)
	}

	return &donation, nil
}

func (r *donationRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, int, error) {
	var w where
	if filter.Status != "" {
		w.add("payment_status = ?", filter.Status)
	}
	if filter.Currency != "" {
		w.add("currency = ?", filter.Currency)
	}
	w.search(filter.Search, "donor_name", "donor_email")

	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM donations`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	donations := []models.Donation{}
	err = r.db.FetchMany(ctx, &donations,
		`SELECT `+donationColumns+` FROM donations`+w.String()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}

	return donations, total, nil
}

func (r *donationRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	res, err := r.db.Execute(ctx, `UPDATE donations SET payment_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update donation: %w", err)
	}

	return requireAffected(res, "donation", id)
}

func (r *donationRepository) CompletedTotals(ctx context.Context) (models.DonationTotals, error) {
	var totals models.DonationTotals

	err := r.db.FetchOne(ctx, &totals, `
		SELECT COUNT(*) AS donations,
			COALESCE(SUM(amount), 0) AS amount,
			COALESCE(AVG(amount), 0) AS average
		FROM donations
		WHERE payment_status = ?`, models.PaymentCompleted)
	if err != nil {
		return totals, fmt.Errorf("failed to total donations: %w", err)
	}

	return totals, nil
}

func (r *donationRepository) CompletedSince(ctx context.Context, since time.Time) (models.DonationRecent, error) {
	var recent models.DonationRecent

	err := r.db.FetchOne(ctx, &recent, `
		SELECT COUNT(*) AS donations, COALESCE(SUM(amount), 0) AS amount
		FROM donations
		WHERE payment_status = ? AND created_at >= ?`, models.PaymentCompleted, since)
	if err != nil {
		return recent, fmt.Errorf("failed to total recent donations: %w", err)
	}

	return recent, nil
}

func (r *donationRepository) ByCurrency(ctx context.Context) ([]models.CurrencyTotal, error) {
	totals := []models.CurrencyTotal{}
	err := r.db.FetchMany(ctx, &totals, `
		SELECT currency, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM donations
		WHERE payment_status = ?
		GROUP BY currency
		ORDER BY total DESC`, models.PaymentCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to group donations by currency: %w", err)
	}
	return totals, nil
}

// Monthly buckets completed donations created on or after since by calendar month, oldest first.
func (r *donationRepository) Monthly(ctx context.Context, since time.Time) ([]models.MonthlyTotal, error) {
	month := r.db.Dialect.MonthExpr("created_at")

	totals := []models.MonthlyTotal{}
	err := r.db.FetchMany(ctx, &totals, `
		SELECT `+month+` AS month, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM donations
		WHERE payment_status = ? AND created_at >= ?
		GROUP BY `+month+`
		ORDER BY month ASC`, models.PaymentCompleted, since)
	if err != nil {
		return nil, fmt.Errorf("failed to group donations by month: %w", err)
	}
	return totals, nil
}

func (r *donationRepository) ByPaymentMethod(ctx context.Context) ([]models.MethodTotal, error) {
	totals := []models.MethodTotal{}
	err := r.db.FetchMany(ctx, &totals, `
		SELECT payment_method, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM donations
		WHERE payment_status = ?
		GROUP BY payment_method
		ORDER BY total DESC`, models.PaymentCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to group donations by payment method: %w", err)
	}
	return totals, nil
}

// TopDonors ranks donors by completed total. Anonymous gifts share one bucket.
func (r *donationRepository) TopDonors(ctx context.Context, limit int) ([]models.DonorTotal, error) {
	donors := []models.DonorTotal{}
	err := r.db.FetchMany(ctx, &donors, `
		SELECT donor_name, COUNT(*) AS donation_count, COALESCE(SUM(amount), 0) AS total_amount
		FROM (
			SELECT CASE WHEN is_anonymous THEN ? ELSE donor_name END AS donor_name, amount
			FROM donations
			WHERE payment_status = ?
		) d
		GROUP BY donor_name
		ORDER BY total_amount DESC
		LIMIT ?`, anonymousDonor, models.PaymentCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank donors: %w", err)
	}
	return donors, nil
}
