// Package dashboard holds the per-user dashboard state: the collections a
// user works with, the selected month and currency, and the summaries
// derived from them. Every mutation goes to the persistence collaborator
// first and only touches local state once that call succeeded.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "minify/internal/errors"
	"minify/internal/events"
	"minify/internal/finance"
	"minify/internal/logger"
	"minify/internal/models"
	"minify/internal/refdata"
	"minify/internal/services"
)

// defaultReminderDays is suggested when no subscription sets its own reminder.
const defaultReminderDays = 2

// Store is the dashboard state of one user. It is safe for concurrent use;
// mutations are serialized and apply in call order.
type Store struct {
	mu sync.Mutex

	userID string
	deps   Deps

	month    finance.Month
	currency models.CurrencyCode

	transactions  []models.Transaction
	subscriptions []models.Subscription
	categories    []models.Category
	rates         []models.ExchangeRate
	chat          []models.ChatMessage
	summary       finance.Aggregation
	loadedAt      time.Time
}

// NewStore creates an empty store for userID showing the current month in
// currency. Call Load to populate it.
func NewStore(userID string, currency models.CurrencyCode, deps Deps) *Store {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if !currency.Valid() {
		currency = models.CurrencyRUB
	}
	s := &Store{
		userID:   userID,
		deps:     deps,
		month:    finance.MonthOf(deps.Now(), deps.Location),
		currency: currency,
	}
	s.recompute()
	return s
}

// UserID returns the owner of the store.
func (s *Store) UserID() string {
	return s.userID
}

// Load fetches every collection concurrently and recomputes the summaries.
// Mutations wait until it finishes. On failure the previous state is kept.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		txs   []models.Transaction
		subs  []models.Subscription
		cats  []models.Category
		rates []models.ExchangeRate
		chat  = s.chat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = s.deps.Transactions.ListAllTransactions(gctx, s.userID, services.TransactionFilter{})
		return err
	})
	g.Go(func() (err error) {
		subs, err = s.deps.Subscriptions.ListAllSubscriptions(gctx, s.userID)
		return err
	})
	g.Go(func() (err error) {
		cats, err = s.deps.Categories.ListAllCategories(gctx, s.userID)
		return err
	})
	g.Go(func() (err error) {
		rates, err = s.deps.Rates.ListExchangeRates(gctx)
		return err
	})
	if s.deps.Chat != nil {
		g.Go(func() (err error) {
			chat, err = s.deps.Chat.ListChatMessages(gctx, s.userID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.transactions = txs
	s.subscriptions = subs
	s.categories = cats
	s.rates = rates
	s.chat = chat
	s.loadedAt = s.deps.Now()
	s.recompute()

	logger.Named("dashboard").Debugw("session loaded",
		"user_id", s.userID,
		"transactions", len(txs),
		"subscriptions", len(subs),
		"chat_messages", len(chat),
	)
	return nil
}

// SetMonth changes the selected month.
func (s *Store) SetMonth(ctx context.Context, month finance.Month) error {
	if month.IsZero() || month.Month < time.January || month.Month > time.December {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	return s.mutate(ctx, func() (events.Event, error) {
		s.month = month
		s.recompute()
		return events.New(events.ViewChanged, s.userID, "").With("month", month.String()), nil
	})
}

// SetCurrency changes the display currency.
func (s *Store) SetCurrency(ctx context.Context, currency models.CurrencyCode) error {
	if !currency.Valid() {
		return apperrors.ErrUnsupportedCurrency
	}
	return s.mutate(ctx, func() (events.Event, error) {
		s.currency = currency
		s.recompute()
		return events.New(events.ViewChanged, s.userID, "").With("currency", string(currency)), nil
	})
}

// CreateTransaction persists draft and prepends the stored transaction.
func (s *Store) CreateTransaction(ctx context.Context, draft services.TransactionDraft) (*models.Transaction, error) {
	var tx *models.Transaction
	err := s.mutate(ctx, func() (e events.Event, err error) {
		tx, e, err = s.createTransaction(ctx, draft, events.TransactionCreated)
		return e, err
	})
	return tx, err
}

// createTransaction must be called with mu held.
func (s *Store) createTransaction(ctx context.Context, draft services.TransactionDraft, kind events.Kind) (*models.Transaction, events.Event, error) {
	if draft.CategoryName == "" {
		if name, ok := finance.CategoryName(s.categories, draft.CategoryID); ok {
			draft.CategoryName = name
		}
	}

	tx, err := s.deps.Transactions.CreateTransaction(ctx, s.userID, draft)
	if err != nil {
		return nil, events.Event{}, err
	}
	tx.CategoryName = finance.TransactionCategoryName(*tx, s.categories)

	s.transactions = append([]models.Transaction{cloneTransaction(*tx)}, s.transactions...)
	s.recompute()

	return tx, events.New(kind, s.userID, tx.ID).With("currency", string(tx.Amount.Currency)), nil
}

// UpdateTransaction persists patch and replaces the local copy.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch services.TransactionPatch) (*models.Transaction, error) {
	var tx *models.Transaction
	err := s.mutate(ctx, func() (events.Event, error) {
		if patch.CategoryName == nil && patch.CategoryID != nil {
			if name, ok := finance.CategoryName(s.categories, patch.CategoryID); ok {
				patch.CategoryName = &name
			}
		}

		updated, err := s.deps.Transactions.UpdateTransaction(ctx, s.userID, id, patch)
		if err != nil {
			return events.Event{}, err
		}
		tx = updated
		s.transactions = replaceByID(s.transactions, cloneTransaction(*tx), func(t models.Transaction) string { return t.ID })
		s.recompute()
		return events.New(events.TransactionUpdated, s.userID, tx.ID), nil
	})
	return tx, err
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutate(ctx, func() (events.Event, error) {
		if err := s.deps.Transactions.DeleteTransaction(ctx, s.userID, id); err != nil {
			return events.Event{}, err
		}
		s.transactions = removeByID(s.transactions, id, func(t models.Transaction) string { return t.ID })
		s.recompute()
		return events.New(events.TransactionDeleted, s.userID, id), nil
	})
}

// ApplyPreset records a transaction dated now from a preset template.
func (s *Store) ApplyPreset(ctx context.Context, presetID string) (*models.Transaction, error) {
	preset, ok := s.preset(presetID)
	if !ok {
		return nil, apperrors.ErrPresetNotFound
	}

	var tx *models.Transaction
	err := s.mutate(ctx, func() (e events.Event, err error) {
		draft := services.TransactionDraft{
			Type:         preset.Type,
			CategoryName: preset.Category,
			Merchant:     preset.Merchant,
			Tags:         cloneTags(preset.Tags),
			Date:         s.deps.Now(),
			Description:  preset.Label,
			Amount:       preset.Amount,
			Note:         preset.Note,
		}
		if cat, ok := categoryByName(s.categories, preset.Category); ok {
			id := cat.ID
			draft.CategoryID = &id
		}
		tx, e, err = s.createTransaction(ctx, draft, events.PresetApplied)
		return e, err
	})
	return tx, err
}

// CreateSubscription persists draft and prepends the stored subscription.
func (s *Store) CreateSubscription(ctx context.Context, draft services.SubscriptionDraft) (*models.Subscription, error) {
	var sub *models.Subscription
	err := s.mutate(ctx, func() (events.Event, error) {
		created, err := s.deps.Subscriptions.CreateSubscription(ctx, s.userID, draft)
		if err != nil {
			return events.Event{}, err
		}
		sub = created
		s.subscriptions = append([]models.Subscription{cloneSubscription(*sub)}, s.subscriptions...)
		s.recompute()
		return events.New(events.SubscriptionCreated, s.userID, sub.ID), nil
	})
	return sub, err
}

// UpdateSubscription persists patch and replaces the local copy.
func (s *Store) UpdateSubscription(ctx context.Context, id string, patch services.SubscriptionPatch) (*models.Subscription, error) {
	var sub *models.Subscription
	err := s.mutate(ctx, func() (e events.Event, err error) {
		sub, e, err = s.updateSubscription(ctx, id, patch)
		return e, err
	})
	return sub, err
}

// updateSubscription must be called with mu held.
func (s *Store) updateSubscription(ctx context.Context, id string, patch services.SubscriptionPatch) (*models.Subscription, events.Event, error) {
	sub, err := s.deps.Subscriptions.UpdateSubscription(ctx, s.userID, id, patch)
	if err != nil {
		return nil, events.Event{}, err
	}
	s.subscriptions = replaceByID(s.subscriptions, cloneSubscription(*sub), func(v models.Subscription) string { return v.ID })
	s.recompute()

	return sub, events.New(events.SubscriptionUpdated, s.userID, sub.ID).With("status", string(sub.Status)), nil
}

// ToggleSubscriptionStatus flips a subscription between active and paused.
func (s *Store) ToggleSubscriptionStatus(ctx context.Context, id string) (*models.Subscription, error) {
	var sub *models.Subscription
	err := s.mutate(ctx, func() (e events.Event, err error) {
		idx := indexByID(s.subscriptions, id, func(v models.Subscription) string { return v.ID })
		if idx < 0 {
			return events.Event{}, apperrors.ErrSubscriptionNotFound
		}
		next := models.SubscriptionStatusPaused
		if s.subscriptions[idx].Status != models.SubscriptionStatusActive {
			next = models.SubscriptionStatusActive
		}
		sub, e, err = s.updateSubscription(ctx, id, services.SubscriptionPatch{Status: &next})
		return e, err
	})
	return sub, err
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	return s.mutate(ctx, func() (events.Event, error) {
		if err := s.deps.Subscriptions.DeleteSubscription(ctx, s.userID, id); err != nil {
			return events.Event{}, err
		}
		s.subscriptions = removeByID(s.subscriptions, id, func(v models.Subscription) string { return v.ID })
		s.recompute()
		return events.New(events.SubscriptionDeleted, s.userID, id), nil
	})
}

// Forecast projects subscription charges from the selected month through
// monthsAhead further months in the selected currency.
func (s *Store) Forecast(monthsAhead int) []finance.ForecastItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return finance.Forecast(s.subscriptions, s.month, monthsAhead, s.currency, s.rates, s.deps.Location)
}

// Convert expresses amount in the selected currency.
func (s *Store) Convert(amount models.Money) finance.Conversion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return finance.Convert(amount, s.currency, s.rates)
}

// Summary returns a copy of the derived summaries.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{
		Month:             s.month,
		Currency:          s.currency,
		DailySummaries:    cloneSlice(s.summary.Daily),
		CategorySummaries: cloneSlice(s.summary.Categories),
		Approximate:       s.summary.Approximate,
	}
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		UserID:            s.userID,
		Month:             s.month,
		Currency:          s.currency,
		Transactions:      cloneTransactions(s.transactions),
		Subscriptions:     cloneSubscriptions(s.subscriptions),
		Categories:        cloneSlice(s.categories),
		ExchangeRates:     cloneSlice(s.rates),
		Presets:           s.presets(),
		ChatHistory:       cloneSlice(s.chat),
		DailySummaries:    cloneSlice(s.summary.Daily),
		CategorySummaries: cloneSlice(s.summary.Categories),
		Approximate:       s.summary.Approximate,
		LoadedAt:          s.loadedAt,
	}
}

// Presets returns the available transaction presets.
func (s *Store) Presets() []refdata.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presets()
}

// ChatHistory returns a copy of the assistant conversation.
func (s *Store) ChatHistory() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.chat)
}

// SendChatPrompt appends the prompt and a generated spending digest to the
// conversation and returns the two new messages. With a Chat collaborator
// both are stored before the local history changes. A blank prompt changes
// nothing and returns ErrEmptyPrompt.
func (s *Store) SendChatPrompt(ctx context.Context, prompt string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.Now()
	msgs := []models.ChatMessage{
		{UserID: s.userID, Role: models.ChatRoleUser, Content: prompt},
		{UserID: s.userID, Role: models.ChatRoleAssistant, Content: s.digest(prompt)},
	}
	for i := range msgs {
		msgs[i].CreatedAt = now
		msgs[i].UpdatedAt = now
	}

	if s.deps.Chat != nil {
		stored, err := s.deps.Chat.AddChatMessages(ctx, s.userID, msgs)
		if err != nil {
			return nil, err
		}
		msgs = stored
	} else {
		for i := range msgs {
			msgs[i].ID = fmt.Sprintf("msg-%d", len(s.chat)+i+1)
		}
	}

	s.chat = append(s.chat, msgs...)
	return cloneSlice(msgs), nil
}

// digest must be called with mu held.
func (s *Store) digest(prompt string) string {
	summaries := cloneSlice(s.summary.Categories)
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total.Amount.GreaterThan(summaries[j].Total.Amount)
	})

	lines := make([]string, 0, len(summaries))
	for _, c := range summaries {
		lines = append(lines, fmt.Sprintf("%s: %s %s", c.Category, c.Total.Amount.StringFixed(0), s.currency))
	}

	reminder := defaultReminderDays
	for _, sub := range s.subscriptions {
		if sub.ReminderDaysBefore != nil && *sub.ReminderDaysBefore > 0 {
			reminder = *sub.ReminderDaysBefore
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prompt: %s\n\n", prompt)
	fmt.Fprintf(&b, "Top spending for %s:\n%s\n\n", s.month.Start(s.deps.Location).Format("January 2006"), strings.Join(lines, "\n"))
	b.WriteString("Suggestions:\n")
	b.WriteString("• Cap categories growing more than 15% above their average.\n")
	fmt.Fprintf(&b, "• Set reminders %d days before subscription charges.\n", reminder)
	b.WriteString("• Consider moving subscriptions to a single billing date to keep cash flow predictable.")
	return b.String()
}

// recompute must be called with mu held.
func (s *Store) recompute() {
	s.summary = finance.Recompute(finance.AggregationInput{
		Transactions:  s.transactions,
		Subscriptions: s.subscriptions,
		Month:         s.month,
		Currency:      s.currency,
		Rates:         s.rates,
		Categories:    s.categories,
		Location:      s.deps.Location,
	})
}

// mutate runs fn with mu held and publishes the event it returns once mu
// is released. Nothing is published when fn fails.
func (s *Store) mutate(ctx context.Context, fn func() (events.Event, error)) error {
	s.mu.Lock()
	e, err := fn()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	events.PublishQuietly(ctx, s.deps.Events, e)
	return nil
}

func (s *Store) preset(id string) (refdata.Preset, bool) {
	for _, p := range s.deps.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return refdata.Preset{}, false
}

func (s *Store) presets() []refdata.Preset {
	out := make([]refdata.Preset, len(s.deps.Presets))
	for i, p := range s.deps.Presets {
		p.Tags = cloneTags(p.Tags)
		out[i] = p
	}
	return out
}

func categoryByName(categories []models.Category, name string) (models.Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

func indexByID[T any](items []T, id string, key func(T) string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

// replaceByID returns a new slice with the matching item swapped for v, or
// v prepended when nothing matched.
func replaceByID[T any](items []T, v T, key func(T) string) []T {
	out := cloneSlice(items)
	if i := indexByID(out, key(v), key); i >= 0 {
		out[i] = v
		return out
	}
	return append([]T{v}, out...)
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
