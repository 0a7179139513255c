package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "minify/internal/errors"
	"minify/internal/models"
	"minify/internal/pagination"
)

// exchangeRateService stores append-only exchange rate samples.
type exchangeRateService struct {
	db *gorm.DB
}

// NewExchangeRateService creates a new ExchangeRateServicer.
func NewExchangeRateService(db *gorm.DB) ExchangeRateServicer {
	return &exchangeRateService{db: db}
}

// ListExchangeRates returns every stored sample ordered by date.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := s.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&rates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rates, nil
}

// GetExchangeRates returns a page of samples, newest first.
func (s *exchangeRateService) GetExchangeRates(ctx context.Context, filter ExchangeRateFilter, page pagination.PageRequest) (*pagination.PageResponse[models.ExchangeRate], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.ExchangeRate{})
	if filter.Base != nil {
		base = base.Where("base_currency = ?", *filter.Base)
	}
	if filter.Quote != nil {
		base = base.Where("quote_currency = ?", *filter.Quote)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rates []models.ExchangeRate
	if err := base.Scopes(pagination.Paginate(page)).Order("date DESC").Find(&rates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(rates, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// LatestRate returns the most recent sample for the exact pair. Inverse
// lookups are left to the conversion engine.
func (s *exchangeRateService) LatestRate(ctx context.Context, base, quote models.CurrencyCode) (*models.ExchangeRate, error) {
	if !base.Valid() || !quote.Valid() {
		return nil, apperrors.ErrUnsupportedCurrency
	}
	var rate models.ExchangeRate
	err := s.db.WithContext(ctx).
		Where("base_currency = ? AND quote_currency = ?", base, quote).
		Order("date DESC, created_at ASC").
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("no rate for %s/%s", base, quote))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rate, nil
}

// RecordRates validates and appends samples in one transaction. A single
// invalid sample rejects the whole batch.
func (s *exchangeRateService) RecordRates(ctx context.Context, samples []ExchangeRateInput) ([]models.ExchangeRate, error) {
	if len(samples) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one rate is required")
	}

	rates := make([]models.ExchangeRate, 0, len(samples))
	for i, in := range samples {
		if err := in.Validate(); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return nil, apperrors.WithMessage(appErr, fmt.Sprintf("rate %d: %s", i, appErr.Message))
			}
			return nil, err
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now().UTC()
		}
		rates = append(rates, models.ExchangeRate{
			BaseCurrency:  in.Base,
			QuoteCurrency: in.Quote,
			Date:          date,
			Rate:          in.Rate,
			Source:        in.Source,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rates).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rates, nil
}

// SeedIfEmpty records samples only when no rates exist yet. It returns the
// number of samples written.
func (s *exchangeRateService) SeedIfEmpty(ctx context.Context, samples []ExchangeRateInput) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ExchangeRate{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 || len(samples) == 0 {
		return 0, nil
	}
	rates, err := s.RecordRates(ctx, samples)
	if err != nil {
		return 0, err
	}
	return len(rates), nil
}
