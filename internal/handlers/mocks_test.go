package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"minify/internal/dashboard"
	"minify/internal/middleware"
	"minify/internal/models"
	"minify/internal/pagination"
	"minify/internal/refdata"
	"minify/internal/services"
	"minify/internal/validator"
)

const testUserID = "0190a1b2-0000-7000-8000-000000000001"

// --- mock user service ---

type mockUserService struct {
	createUserFn      func(email, password, fullName string) (*models.User, error)
	getUserByIDFn     func(id string) (*models.User, error)
	attemptLoginFn    func(email, password string) (*models.User, error)
	storeHashFn       func(userID, hash string) error
	getHashFn         func(userID string) (string, error)
	listUsersFn       func(filter services.UserFilter, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	updateUserFn      func(userID string, patch services.UserPatch) (*models.User, error)
	storedHashes      map[string]string
	storedHashesMutex sync.Mutex
}

func (m *mockUserService) CreateUser(_ context.Context, email, password, fullName string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, fullName)
	}
	return newUser(testUserID, email), nil
}

func (m *mockUserService) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return newUser(testUserID, email), nil
}

func (m *mockUserService) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return newUser(id, "jane@example.com"), nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool { return true }

func (m *mockUserService) AttemptLogin(_ context.Context, email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return newUser(testUserID, email), nil
}

func (m *mockUserService) StoreRefreshTokenHash(_ context.Context, userID, tokenHash string) error {
	if m.storeHashFn != nil {
		return m.storeHashFn(userID, tokenHash)
	}
	m.storedHashesMutex.Lock()
	defer m.storedHashesMutex.Unlock()
	if m.storedHashes == nil {
		m.storedHashes = make(map[string]string)
	}
	m.storedHashes[userID] = tokenHash
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(_ context.Context, userID string) (string, error) {
	if m.getHashFn != nil {
		return m.getHashFn(userID)
	}
	m.storedHashesMutex.Lock()
	defer m.storedHashesMutex.Unlock()
	return m.storedHashes[userID], nil
}

func (m *mockUserService) ListUsers(_ context.Context, filter services.UserFilter, page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.User{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockUserService) UpdateUser(_ context.Context, userID string, patch services.UserPatch) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(userID, patch)
	}
	u := newUser(userID, "jane@example.com")
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	if patch.BaseCurrency != nil {
		u.BaseCurrency = *patch.BaseCurrency
	}
	return u, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock category service ---

type mockCategoryService struct {
	categories       []models.Category
	createCategoryFn func(userID string, input services.CategoryInput) (*models.Category, error)
	getCategoriesFn  func(userID string, kind *models.CategoryKind, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryFn    func(userID, id string) (*models.Category, error)
	updateCategoryFn func(userID, id string, patch services.CategoryPatch) (*models.Category, error)
	deleteCategoryFn func(userID, id string) error
	seedDefaultsFn   func(userID string, defaults []services.CategoryInput) error
}

func (m *mockCategoryService) CreateCategory(_ context.Context, userID string, input services.CategoryInput) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, input)
	}
	return &models.Category{Base: models.Base{ID: "cat-new"}, UserID: userID, Name: input.Name, Kind: input.Kind}, nil
}

func (m *mockCategoryService) GetUserCategories(_ context.Context, userID string, kind *models.CategoryKind, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn(userID, kind, page)
	}
	resp := pagination.NewPageResponse([]models.Category{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockCategoryService) ListAllCategories(_ context.Context, _ string) ([]models.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryService) GetCategoryByID(_ context.Context, userID, id string) (*models.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(userID, id)
	}
	return &models.Category{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockCategoryService) UpdateCategory(_ context.Context, userID, id string, patch services.CategoryPatch) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, id, patch)
	}
	return &models.Category{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, userID, id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, id)
	}
	return nil
}

func (m *mockCategoryService) SeedDefaults(_ context.Context, userID string, defaults []services.CategoryInput) error {
	if m.seedDefaultsFn != nil {
		return m.seedDefaultsFn(userID, defaults)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	transactions      []models.Transaction
	createFn          func(userID string, draft services.TransactionDraft) (*models.Transaction, error)
	getTransactionsFn func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getByIDFn         func(userID, id string) (*models.Transaction, error)
	updateFn          func(userID, id string, patch services.TransactionPatch) (*models.Transaction, error)
	deleteFn          func(userID, id string) error
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, userID string, draft services.TransactionDraft) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(userID, draft)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return &models.Transaction{
		Base:         models.Base{ID: "tx-new"},
		UserID:       userID,
		Type:         draft.Type,
		CategoryID:   draft.CategoryID,
		CategoryName: draft.CategoryName,
		Date:         draft.Date,
		Description:  draft.Description,
		Amount:       draft.Amount,
	}, nil
}

func (m *mockTransactionService) GetUserTransactions(_ context.Context, userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockTransactionService) ListAllTransactions(_ context.Context, _ string, _ services.TransactionFilter) ([]models.Transaction, error) {
	return m.transactions, nil
}

func (m *mockTransactionService) GetTransactionByID(_ context.Context, userID, id string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(userID, id)
	}
	return &models.Transaction{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockTransactionService) UpdateTransaction(_ context.Context, userID, id string, patch services.TransactionPatch) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, id, patch)
	}
	return &models.Transaction{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, userID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock subscription service ---

type mockSubscriptionService struct {
	subscriptions      []models.Subscription
	createFn           func(userID string, draft services.SubscriptionDraft) (*models.Subscription, error)
	getSubscriptionsFn func(userID string, page pagination.PageRequest, filter services.SubscriptionFilter) (*pagination.PageResponse[models.Subscription], error)
	getByIDFn          func(userID, id string) (*models.Subscription, error)
	updateFn           func(userID, id string, patch services.SubscriptionPatch) (*models.Subscription, error)
	deleteFn           func(userID, id string) error
}

func (m *mockSubscriptionService) CreateSubscription(_ context.Context, userID string, draft services.SubscriptionDraft) (*models.Subscription, error) {
	if m.createFn != nil {
		return m.createFn(userID, draft)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	status := draft.Status
	if status == "" {
		status = models.SubscriptionStatusActive
	}
	return &models.Subscription{
		Base:            models.Base{ID: "sub-new"},
		UserID:          userID,
		Name:            draft.Name,
		NextPaymentDate: draft.NextPaymentDate,
		Cadence:         draft.Cadence,
		Amount:          draft.Amount,
		Status:          status,
	}, nil
}

func (m *mockSubscriptionService) GetUserSubscriptions(_ context.Context, userID string, page pagination.PageRequest, filter services.SubscriptionFilter) (*pagination.PageResponse[models.Subscription], error) {
	if m.getSubscriptionsFn != nil {
		return m.getSubscriptionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Subscription{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockSubscriptionService) ListAllSubscriptions(_ context.Context, _ string) ([]models.Subscription, error) {
	return m.subscriptions, nil
}

func (m *mockSubscriptionService) GetSubscriptionByID(_ context.Context, userID, id string) (*models.Subscription, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(userID, id)
	}
	for i := range m.subscriptions {
		if m.subscriptions[i].ID == id {
			sub := m.subscriptions[i]
			return &sub, nil
		}
	}
	return &models.Subscription{Base: models.Base{ID: id}, UserID: userID}, nil
}

func (m *mockSubscriptionService) UpdateSubscription(_ context.Context, userID, id string, patch services.SubscriptionPatch) (*models.Subscription, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, id, patch)
	}
	sub, _ := m.GetSubscriptionByID(context.Background(), userID, id)
	patch.Apply(sub)
	return sub, nil
}

func (m *mockSubscriptionService) DeleteSubscription(_ context.Context, userID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return nil
}

var _ services.SubscriptionServicer = (*mockSubscriptionService)(nil)

// --- mock exchange rate service ---

type mockRateService struct {
	rates        []models.ExchangeRate
	getRatesFn   func(filter services.ExchangeRateFilter, page pagination.PageRequest) (*pagination.PageResponse[models.ExchangeRate], error)
	latestFn     func(base, quote models.CurrencyCode) (*models.ExchangeRate, error)
	recordRateFn func(samples []services.ExchangeRateInput) ([]models.ExchangeRate, error)
}

func (m *mockRateService) ListExchangeRates(_ context.Context) ([]models.ExchangeRate, error) {
	return m.rates, nil
}

func (m *mockRateService) GetExchangeRates(_ context.Context, filter services.ExchangeRateFilter, page pagination.PageRequest) (*pagination.PageResponse[models.ExchangeRate], error) {
	if m.getRatesFn != nil {
		return m.getRatesFn(filter, page)
	}
	resp := pagination.NewPageResponse(m.rates, page.Page, page.PageSize, int64(len(m.rates)))
	return &resp, nil
}

func (m *mockRateService) LatestRate(_ context.Context, base, quote models.CurrencyCode) (*models.ExchangeRate, error) {
	if m.latestFn != nil {
		return m.latestFn(base, quote)
	}
	return &models.ExchangeRate{BaseCurrency: base, QuoteCurrency: quote}, nil
}

func (m *mockRateService) RecordRates(_ context.Context, samples []services.ExchangeRateInput) ([]models.ExchangeRate, error) {
	if m.recordRateFn != nil {
		return m.recordRateFn(samples)
	}
	out := make([]models.ExchangeRate, 0, len(samples))
	for i, s := range samples {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, models.ExchangeRate{
			Base:          models.Base{ID: "rate-" + string(rune('a'+i))},
			BaseCurrency:  s.Base,
			QuoteCurrency: s.Quote,
			Rate:          s.Rate,
			Date:          s.Date,
			Source:        s.Source,
		})
	}
	return out, nil
}

func (m *mockRateService) SeedIfEmpty(_ context.Context, _ []services.ExchangeRateInput) (int, error) {
	return 0, nil
}

var _ services.ExchangeRateServicer = (*mockRateService)(nil)

// --- mock analytics service ---

type mockAnalyticsService struct {
	dailyFn    func(userID string, from, to time.Time) ([]services.DailyTotal, error)
	categoryFn func(userID string, from, to time.Time) ([]services.CategoryTotal, error)
	overviewFn func(userID string) (*services.SubscriptionsOverview, error)
}

func (m *mockAnalyticsService) DailyTotals(_ context.Context, userID string, from, to time.Time) ([]services.DailyTotal, error) {
	if m.dailyFn != nil {
		return m.dailyFn(userID, from, to)
	}
	return []services.DailyTotal{}, nil
}

func (m *mockAnalyticsService) CategoryTotals(_ context.Context, userID string, from, to time.Time) ([]services.CategoryTotal, error) {
	if m.categoryFn != nil {
		return m.categoryFn(userID, from, to)
	}
	return []services.CategoryTotal{}, nil
}

func (m *mockAnalyticsService) SubscriptionsOverview(_ context.Context, userID string) (*services.SubscriptionsOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(userID)
	}
	return &services.SubscriptionsOverview{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

// --- mock audit service ---

type mockAuditService struct {
	mu      sync.Mutex
	actions []string
}

func (m *mockAuditService) Log(_, action, _, _, _ string, _ map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
}

// --- session tracking ---

// trackingSessions wraps a real registry and records which users were
// dropped or invalidated.
type trackingSessions struct {
	*dashboard.Registry
	mu          sync.Mutex
	dropped     []string
	invalidated []string
	flushed     int
}

func (s *trackingSessions) Drop(userID string) {
	s.mu.Lock()
	s.dropped = append(s.dropped, userID)
	s.mu.Unlock()
	s.Registry.Drop(userID)
}

func (s *trackingSessions) Invalidate(userID string) {
	s.mu.Lock()
	s.invalidated = append(s.invalidated, userID)
	s.mu.Unlock()
	s.Registry.Invalidate(userID)
}

func (s *trackingSessions) Flush() {
	s.mu.Lock()
	s.flushed++
	s.mu.Unlock()
	s.Registry.Flush()
}

var _ Sessions = (*trackingSessions)(nil)

// fixedNow is inside March 2024; all dashboard fixtures live in that month.
var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestSessions(t *testing.T, txSvc *mockTransactionService, subSvc *mockSubscriptionService, catSvc *mockCategoryService, rateSvc *mockRateService) *trackingSessions {
	t.Helper()
	return newTestSessionsIn(t, time.UTC, txSvc, subSvc, catSvc, rateSvc)
}

// newTestSessionsIn is newTestSessions with calendar days bounded in loc.
func newTestSessionsIn(t *testing.T, loc *time.Location, txSvc *mockTransactionService, subSvc *mockSubscriptionService, catSvc *mockCategoryService, rateSvc *mockRateService) *trackingSessions {
	t.Helper()
	data, err := refdata.Default()
	if err != nil {
		t.Fatalf("failed to load reference data: %v", err)
	}
	registry := dashboard.NewRegistry(time.Minute, func(_ context.Context, userID string) (*dashboard.Store, error) {
		return dashboard.NewStore(userID, models.CurrencyRUB, dashboard.Deps{
			Transactions:  txSvc,
			Subscriptions: subSvc,
			Categories:    catSvc,
			Rates:         rateSvc,
			Presets:       data.PresetList(),
			Location:      loc,
			Now:           func() time.Time { return fixedNow },
		}), nil
	})
	return &trackingSessions{Registry: registry}
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newUser(id, email string) *models.User {
	u := &models.User{
		Email:        email,
		FullName:     "Jane Doe",
		Role:         models.UserRoleUser,
		Status:       models.UserStatusActive,
		BaseCurrency: models.CurrencyRUB,
	}
	u.ID = id
	return u
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// amountOf reads a decimal from a JSON value that may be quoted or not.
func amountOf(t *testing.T, v interface{}) decimal.Decimal {
	t.Helper()
	switch x := v.(type) {
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			t.Fatalf("invalid decimal %q: %v", x, err)
		}
		return d
	case float64:
		return decimal.NewFromFloat(x)
	}
	t.Fatalf("unexpected amount value %#v", v)
	return decimal.Zero
}

// categoryTotal finds the summary total of one category in a response.
func categoryTotal(t *testing.T, summary map[string]interface{}, name string) (decimal.Decimal, bool) {
	t.Helper()
	items, _ := summary["category_summaries"].([]interface{})
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["category"] == name {
			total := item["total"].(map[string]interface{})
			return amountOf(t, total["amount"]), true
		}
	}
	return decimal.Zero, false
}
