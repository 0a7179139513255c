package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/models"
	"minify/internal/pagination"
	"minify/internal/services"
)

const subscriptionID = "0190a1b2-0000-7000-8000-0000000000b1"

func streamingSubscription(status models.SubscriptionStatus) models.Subscription {
	return models.Subscription{
		Base:            models.Base{ID: subscriptionID},
		UserID:          testUserID,
		Name:            "Streaming",
		NextPaymentDate: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Cadence:         models.CadenceMonthly,
		Amount:          models.NewMoney(decimal.NewFromInt(15), models.CurrencyRUB),
		Status:          status,
	}
}

func setupSubscriptionRouter(handler *SubscriptionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/subscriptions", handler.CreateSubscription)
	auth.GET("/subscriptions", handler.GetUserSubscriptions)
	auth.GET("/subscriptions/:id", handler.GetSubscriptionByID)
	auth.GET("/subscriptions/:id/forecast", handler.GetOccurrences)
	auth.PATCH("/subscriptions/:id", handler.UpdateSubscription)
	auth.POST("/subscriptions/:id/toggle", handler.ToggleSubscription)
	auth.DELETE("/subscriptions/:id", handler.DeleteSubscription)
	return r
}

func newSubscriptionFixture(t *testing.T, subSvc *mockSubscriptionService) *SubscriptionHandler {
	t.Helper()
	sessions := newTestSessions(t, &mockTransactionService{}, subSvc, &mockCategoryService{}, &mockRateService{})
	return NewSubscriptionHandler(subSvc, &mockAuditService{}, sessions, time.UTC)
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	t.Run("returns 201 and counts the charge in its month", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions",
			`{"name":"Music","next_payment_date":"2024-03-20","cadence":"monthly","amount":"300","currency":"RUB"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		sub := result["subscription"].(map[string]interface{})
		if sub["status"] != string(models.SubscriptionStatusActive) {
			t.Errorf("expected default status active, got %v", sub["status"])
		}
		total, ok := categoryTotal(t, result["summary"].(map[string]interface{}), "Subscriptions")
		if !ok || !total.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected Subscriptions total 300, got %v", total)
		}
	})

	t.Run("returns 400 on unknown cadence", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions",
			`{"name":"Music","next_payment_date":"2024-03-20","cadence":"daily","amount":"300","currency":"RUB"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions",
			`{"next_payment_date":"2024-03-20","cadence":"monthly","amount":"300","currency":"RUB"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative reminder", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions",
			`{"name":"Music","next_payment_date":"2024-03-20","cadence":"monthly","amount":"300","currency":"RUB","reminder_days_before":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSubscriptionHandler_GetUserSubscriptions(t *testing.T) {
	t.Run("passes status and cadence filters", func(t *testing.T) {
		var got services.SubscriptionFilter
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			getSubscriptionsFn: func(_ string, page pagination.PageRequest, filter services.SubscriptionFilter) (*pagination.PageResponse[models.Subscription], error) {
				got = filter
				resp := pagination.NewPageResponse([]models.Subscription{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "GET", "/subscriptions?status=paused&cadence=yearly", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Status == nil || *got.Status != models.SubscriptionStatusPaused {
			t.Errorf("expected paused filter, got %v", got.Status)
		}
		if got.Cadence == nil || *got.Cadence != models.CadenceYearly {
			t.Errorf("expected yearly filter, got %v", got.Cadence)
		}
	})

	t.Run("returns 400 on unknown cadence filter", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "GET", "/subscriptions?cadence=hourly", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CADENCE")
	})
}

func TestSubscriptionHandler_GetOccurrences(t *testing.T) {
	t.Run("clamps month ends", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			subscriptions: []models.Subscription{streamingSubscription(models.SubscriptionStatusActive)},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "GET", "/subscriptions/"+subscriptionID+"/forecast?count=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		dates := parseJSON(t, rec)["dates"].([]interface{})
		want := []string{"2024-01-31T00:00:00Z", "2024-02-29T00:00:00Z", "2024-03-29T00:00:00Z"}
		if len(dates) != len(want) {
			t.Fatalf("expected %d dates, got %v", len(want), dates)
		}
		for i, w := range want {
			if dates[i] != w {
				t.Errorf("date %d: expected %s, got %v", i, w, dates[i])
			}
		}
	})

	t.Run("defaults to six dates", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			subscriptions: []models.Subscription{streamingSubscription(models.SubscriptionStatusActive)},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "GET", "/subscriptions/"+subscriptionID+"/forecast", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if n := len(parseJSON(t, rec)["dates"].([]interface{})); n != 6 {
			t.Errorf("expected 6 dates, got %d", n)
		}
	})

	t.Run("returns 400 on out-of-range count", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "GET", "/subscriptions/"+subscriptionID+"/forecast?count=61", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSubscriptionHandler_ToggleSubscription(t *testing.T) {
	t.Run("pauses an active subscription", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			subscriptions: []models.Subscription{streamingSubscription(models.SubscriptionStatusActive)},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions/"+subscriptionID+"/toggle", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		sub := parseJSON(t, rec)["subscription"].(map[string]interface{})
		if sub["status"] != string(models.SubscriptionStatusPaused) {
			t.Errorf("expected paused, got %v", sub["status"])
		}
	})

	t.Run("returns 404 for an unknown subscription", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "POST", "/subscriptions/"+subscriptionID+"/toggle", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SUBSCRIPTION_NOT_FOUND")
	})
}

func TestSubscriptionHandler_UpdateSubscription(t *testing.T) {
	t.Run("renames a subscription", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			subscriptions: []models.Subscription{streamingSubscription(models.SubscriptionStatusActive)},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "PATCH", "/subscriptions/"+subscriptionID, `{"name":"Video"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		sub := parseJSON(t, rec)["subscription"].(map[string]interface{})
		if sub["name"] != "Video" {
			t.Errorf("expected name Video, got %v", sub["name"])
		}
	})

	t.Run("returns 400 when currency comes without amount", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "PATCH", "/subscriptions/"+subscriptionID, `{"currency":"USD"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSubscriptionHandler_DeleteSubscription(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			subscriptions: []models.Subscription{streamingSubscription(models.SubscriptionStatusActive)},
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "DELETE", "/subscriptions/"+subscriptionID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		handler := newSubscriptionFixture(t, &mockSubscriptionService{
			deleteFn: func(_, _ string) error { return apperrors.ErrSubscriptionNotFound },
		})
		r := setupSubscriptionRouter(handler)

		rec := doRequest(r, "DELETE", "/subscriptions/"+subscriptionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
