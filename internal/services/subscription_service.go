package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "minify/internal/errors"
	"minify/internal/models"
	"minify/internal/pagination"
)

// subscriptionService handles subscription-related business logic.
type subscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(db *gorm.DB) SubscriptionServicer {
	return &subscriptionService{db: db}
}

// CreateSubscription stores a new recurring charge. Status defaults to active.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID string, draft SubscriptionDraft) (*models.Subscription, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := ensureCategory(db, userID, draft.CategoryID); err != nil {
		return nil, err
	}

	status := draft.Status
	if status == "" {
		status = models.SubscriptionStatusActive
	}

	subscription := &models.Subscription{
		UserID:             userID,
		Name:               strings.TrimSpace(draft.Name),
		CategoryID:         draft.CategoryID,
		Merchant:           draft.Merchant,
		NextPaymentDate:    draft.NextPaymentDate,
		Cadence:            draft.Cadence,
		Amount:             draft.Amount,
		Status:             status,
		Tags:               draft.Tags,
		ReminderDaysBefore: draft.ReminderDaysBefore,
		Notes:              draft.Notes,
	}
	if err := db.Create(subscription).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subscription, nil
}

var subscriptionSorts = pagination.SortSpec{
	Columns: map[string]string{
		"next_payment_date": "next_payment_date",
		"amount":            "amount",
		"name":              "name",
	},
	Default: "next_payment_date",
}

// GetUserSubscriptions retrieves a paginated list of subscriptions ordered by next payment.
func (s *subscriptionService) GetUserSubscriptions(ctx context.Context, userID string, page pagination.PageRequest, filter SubscriptionFilter) (*pagination.PageResponse[models.Subscription], error) {
	page.Defaults()
	order, sortKey, err := subscriptionSorts.Resolve(page.Sort)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.WithContext(ctx).Model(&models.Subscription{}).Where("user_id = ?", userID)
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.Cadence != nil {
		base = base.Where("cadence = ?", *filter.Cadence)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var subscriptions []models.Subscription
	if err := base.Scopes(pagination.Paginate(page)).
		Order(order).
		Order("id ASC").
		Find(&subscriptions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(subscriptions, page.Page, page.PageSize, totalItems).
		WithQuery(sortKey, filter.Applied())
	return &result, nil
}

// ListAllSubscriptions returns every subscription of the user in creation order.
func (s *subscriptionService) ListAllSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subscriptions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subscriptions, nil
}

// GetSubscriptionByID retrieves a subscription by ID for a specific user.
func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, userID, subscriptionID string) (*models.Subscription, error) {
	return findSubscription(s.db.WithContext(ctx), userID, subscriptionID)
}

// UpdateSubscription applies a validated patch.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, userID, subscriptionID string, patch SubscriptionPatch) (*models.Subscription, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var result *models.Subscription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subscription, err := findSubscription(tx, userID, subscriptionID)
		if err != nil {
			return err
		}
		if patch.CategoryID != nil && *patch.CategoryID != "" {
			if err := ensureCategory(tx, userID, patch.CategoryID); err != nil {
				return err
			}
		}

		patch.Apply(subscription)
		if err := tx.Save(subscription).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result = subscription
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSubscription soft-deletes a subscription owned by the user.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	db := s.db.WithContext(ctx)
	subscription, err := findSubscription(db, userID, subscriptionID)
	if err != nil {
		return err
	}
	if err := db.Delete(subscription).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func findSubscription(db *gorm.DB, userID, subscriptionID string) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := db.Where("id = ? AND user_id = ?", subscriptionID, userID).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &subscription, nil
}

// ensureCategory verifies that a referenced category exists and belongs to the user.
func ensureCategory(db *gorm.DB, userID string, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	var count int64
	if err := db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", *categoryID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
