package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"caritasAPI/internal/models"
	"caritasAPI/internal/payment"
	"caritasAPI/internal/repository"
)

type DonationService interface {
	Submit(ctx context.Context, in models.DonationInput) (*models.Donation, error)
	Summary(ctx context.Context) (*models.DonationSummary, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Donation, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Donation, error)
	Analytics(ctx context.Context) (*models.DonationAnalytics, error)
	AdminStats(ctx context.Context) (*models.DonationAdminStats, error)
}

const (
	donationNotFound = "Donation not found"
	defaultCurrency  = "USD"
	analyticsMonths  = 12
)

type donationService struct {
	donationRepo repository.DonationRepository
	processor    payment.Processor
	now          func() time.Time
}

func NewDonationService(donationRepo repository.DonationRepository, processor payment.Processor) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		processor:    processor,
		now:          time.Now,
	}
}

// Submit charges the donor first and records the donation only when the charge went through.
func (s *donationService) Submit(ctx context.Context, in models.DonationInput) (*models.Donation, error) {
	if in.Amount <= 0 {
		return nil, invalidField("amount", "Amount must be greater than 0")
	}
	if in.Amount > models.MaxDonationAmount {
		return nil, invalidField("amount", "Amount must be at most 99999999.99")
	}
	if !models.WholeCents(in.Amount) {
		return nil, invalidField("amount", "Amount must have at most 2 decimal places")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	charge, err := s.processor.Charge(ctx, payment.ChargeRequest{
		Amount:      in.Amount,
		Currency:    currency,
		Method:      in.PaymentMethod,
		DonorName:   in.DonorName,
		DonorEmail:  in.DonorEmail,
		Description: in.Message,
	})
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			return nil, newError(KindPaymentRequired, "Payment could not be processed", err)
		}
		return nil, fmt.Errorf("charge donation: %w", err)
	}

	donation := &models.Donation{
		DonorName:     in.DonorName,
		DonorEmail:    in.DonorEmail,
		Amount:        in.Amount,
		Currency:      currency,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentStatus(charge.Status),
		PaymentID:     charge.PaymentID,
		Message:       in.Message,
		IsAnonymous:   in.IsAnonymous,
	}
	if !donation.PaymentStatus.Valid() {
		donation.PaymentStatus = models.PaymentCompleted
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *donationService) summary(ctx context.Context, g *errgroup.Group, out *models.DonationSummary) {
	since := s.now().UTC().Add(-recentWindow)

	g.Go(func() error {
		totals, err := s.donationRepo.CompletedTotals(ctx)
		out.Total = totals
		return err
	})
	g.Go(func() error {
		recent, err := s.donationRepo.CompletedSince(ctx, since)
		out.Recent = recent
		return err
	})
	g.Go(func() error {
		byCurrency, err := s.donationRepo.ByCurrency(ctx)
		out.ByCurrency = byCurrency
		return err
	})
}

// Summary reports completed donations only.
func (s *donationService) Summary(ctx context.Context) (*models.DonationSummary, error) {
	var out models.DonationSummary

	g, gctx := errgroup.WithContext(ctx)
	s.summary(gctx, g, &out)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *donationService) AdminStats(ctx context.Context) (*models.DonationAdminStats, error) {
	var out models.DonationAdminStats

	g, gctx := errgroup.WithContext(ctx)
	s.summary(gctx, g, &out.DonationSummary)
	g.Go(func() error {
		byStatus, err := s.donationRepo.CountByStatus(gctx)
		out.ByStatus = byStatus
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *donationService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, models.Pagination, error) {
	if filter.Status != "" && !models.PaymentStatus(filter.Status).Valid() {
		return nil, models.Pagination{}, invalidField("status", "Status must be one of: pending, completed, failed, refunded")
	}
	filter.Currency = strings.ToUpper(filter.Currency)

	donations, total, err := s.donationRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return donations, models.NewPagination(page, total), nil
}

func (s *donationService) Get(ctx context.Context, id int64) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, donationNotFound)
	}
	return donation, nil
}

func (s *donationService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Donation, error) {
	paymentStatus := models.PaymentStatus(status)
	if !paymentStatus.Valid() {
		return nil, invalidField("payment_status", "Invalid payment status")
	}

	if err := s.donationRepo.UpdateStatus(ctx, id, paymentStatus); err != nil {
		return nil, notFound(err, donationNotFound)
	}

	return s.Get(ctx, id)
}

// Analytics covers completed donations: the last twelve calendar months, payment methods and the top donors.
func (s *donationService) Analytics(ctx context.Context) (*models.DonationAnalytics, error) {
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(analyticsMonths - 1), 0)

	var out models.DonationAnalytics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		monthly, err := s.donationRepo.Monthly(gctx, since)
		out.MonthlyDonations = monthly
		return err
	})
	g.Go(func() error {
		methods, err := s.donationRepo.ByPaymentMethod(gctx)
		out.PaymentMethods = methods
		return err
	})
	g.Go(func() error {
		donors, err := s.donationRepo.TopDonors(gctx, topN)
		out.TopDonors = donors
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
