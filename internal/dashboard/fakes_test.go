package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/events"
	"minify/internal/models"
	"minify/internal/services"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend is an in-memory implementation of every collaborator.
type fakeBackend struct {
	mu sync.Mutex

	seq           int
	transactions  []models.Transaction
	subscriptions []models.Subscription
	categories    []models.Category
	rates         []models.ExchangeRate
	chat          []models.ChatMessage

	// listGate, when set, holds ListAllTransactions after it has taken its
	// snapshot; listStarted is closed at that point.
	listGate    chan struct{}
	listStarted chan struct{}

	fail      bool
	listCalls int
	lastDraft services.TransactionDraft
	lastPatch services.TransactionPatch
}

func (f *fakeBackend) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeBackend) ListAllTransactions(ctx context.Context, _ string, _ services.TransactionFilter) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.listCalls++
	if f.fail {
		f.mu.Unlock()
		return nil, errBackend
	}
	out := append([]models.Transaction(nil), f.transactions...)
	gate, started := f.listGate, f.listStarted
	f.mu.Unlock()

	if gate != nil {
		close(started)
		<-gate
	}
	return out, nil
}

func (f *fakeBackend) CreateTransaction(_ context.Context, userID string, draft services.TransactionDraft) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDraft = draft
	if f.fail {
		return nil, errBackend
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	tx := models.Transaction{
		UserID:       userID,
		Type:         draft.Type,
		CategoryID:   draft.CategoryID,
		CategoryName: draft.CategoryName,
		Merchant:     draft.Merchant,
		Tags:         draft.Tags,
		Date:         draft.Date,
		Description:  draft.Description,
		Amount:       draft.Amount,
		Note:         draft.Note,
	}
	tx.ID = f.nextID("tx")
	f.transactions = append(f.transactions, tx)
	return &tx, nil
}

func (f *fakeBackend) UpdateTransaction(_ context.Context, _ string, id string, patch services.TransactionPatch) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPatch = patch
	if f.fail {
		return nil, errBackend
	}
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			patch.Apply(&f.transactions[i])
			if patch.CategoryName != nil {
				f.transactions[i].CategoryName = *patch.CategoryName
			}
			tx := f.transactions[i]
			return &tx, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (f *fakeBackend) DeleteTransaction(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errBackend
	}
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}

func (f *fakeBackend) ListAllSubscriptions(context.Context, string) ([]models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	return append([]models.Subscription(nil), f.subscriptions...), nil
}

func (f *fakeBackend) CreateSubscription(_ context.Context, userID string, draft services.SubscriptionDraft) (*models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	status := draft.Status
	if status == "" {
		status = models.SubscriptionStatusActive
	}
	sub := models.Subscription{
		UserID:             userID,
		Name:               draft.Name,
		CategoryID:         draft.CategoryID,
		NextPaymentDate:    draft.NextPaymentDate,
		Cadence:            draft.Cadence,
		Amount:             draft.Amount,
		Status:             status,
		ReminderDaysBefore: draft.ReminderDaysBefore,
	}
	sub.ID = f.nextID("sub")
	f.subscriptions = append(f.subscriptions, sub)
	return &sub, nil
}

func (f *fakeBackend) UpdateSubscription(_ context.Context, _ string, id string, patch services.SubscriptionPatch) (*models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range f.subscriptions {
		if f.subscriptions[i].ID == id {
			patch.Apply(&f.subscriptions[i])
			sub := f.subscriptions[i]
			return &sub, nil
		}
	}
	return nil, apperrors.ErrSubscriptionNotFound
}

func (f *fakeBackend) DeleteSubscription(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errBackend
	}
	for i := range f.subscriptions {
		if f.subscriptions[i].ID == id {
			f.subscriptions = append(f.subscriptions[:i], f.subscriptions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSubscriptionNotFound
}

func (f *fakeBackend) ListAllCategories(context.Context, string) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	return append([]models.Category(nil), f.categories...), nil
}

func (f *fakeBackend) ListExchangeRates(context.Context) ([]models.ExchangeRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	return append([]models.ExchangeRate(nil), f.rates...), nil
}

func (f *fakeBackend) ListChatMessages(context.Context, string) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	return append([]models.ChatMessage(nil), f.chat...), nil
}

func (f *fakeBackend) AddChatMessages(_ context.Context, userID string, messages []models.ChatMessage) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	stored := make([]models.ChatMessage, len(messages))
	for i, m := range messages {
		m.ID = f.nextID("msg")
		m.UserID = userID
		stored[i] = m
	}
	f.chat = append(f.chat, stored...)
	return stored, nil
}

func (f *fakeBackend) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func money(amount string, currency models.CurrencyCode) models.Money {
	return models.NewMoney(decimal.RequireFromString(amount), currency)
}

func category(id, name string, kind models.CategoryKind) models.Category {
	c := models.Category{Name: name, Kind: kind}
	c.ID = id
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
