// Package refdata loads the reference data shipped with the service:
// default categories, seed exchange rates and transaction presets.
package refdata

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"minify/internal/models"
	"minify/internal/services"
)

//go:embed refdata.yaml
var defaultYAML []byte

// Preset is a one-click transaction template. Category refers to a
// category by name so presets work for every user's own category rows.
type Preset struct {
	ID          string                 `json:"id"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Merchant    string                 `json:"merchant,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Note        string                 `json:"note,omitempty"`
	Amount      models.Money           `json:"amount"`
}

// SeedRate is an exchange rate sample positioned relative to a month start.
type SeedRate struct {
	Base  models.CurrencyCode
	Quote models.CurrencyCode
	Rate  decimal.Decimal
	Day   int
}

// Data is the parsed reference data.
type Data struct {
	Categories []services.CategoryInput
	Rates      []SeedRate
	Presets    []Preset
}

type fileTmp struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Kind        string `yaml:"kind"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
		Color       string `yaml:"color"`
	} `yaml:"categories"`
	Rates []struct {
		Base  string `yaml:"base"`
		Quote string `yaml:"quote"`
		Rate  string `yaml:"rate"`
		Day   int    `yaml:"day"`
	} `yaml:"rates"`
	Presets []struct {
		ID          string   `yaml:"id"`
		Label       string   `yaml:"label"`
		Description string   `yaml:"description"`
		Type        string   `yaml:"type"`
		Category    string   `yaml:"category"`
		Merchant    string   `yaml:"merchant"`
		Tags        []string `yaml:"tags"`
		Note        string   `yaml:"note"`
		Amount      string   `yaml:"amount"`
		Currency    string   `yaml:"currency"`
	} `yaml:"presets"`
}

// Default returns the embedded reference data.
func Default() (*Data, error) {
	return Parse(defaultYAML)
}

// Load reads reference data from path, or the embedded default when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates reference data.
func Parse(raw []byte) (*Data, error) {
	var tmp fileTmp
	if err := yaml.Unmarshal(raw, &tmp); err != nil {
		return nil, fmt.Errorf("decode reference data: %w", err)
	}

	data := &Data{}
	names := make(map[string]bool, len(tmp.Categories))
	for i, c := range tmp.Categories {
		kind := models.CategoryKind(c.Kind)
		switch kind {
		case models.CategoryKindIncome, models.CategoryKindExpense, models.CategoryKindTransfer:
		default:
			return nil, fmt.Errorf("category %d (%s): unknown kind %q", i, c.Name, c.Kind)
		}
		if c.Name == "" || names[c.Name] {
			return nil, fmt.Errorf("category %d: name %q is empty or duplicated", i, c.Name)
		}
		names[c.Name] = true
		data.Categories = append(data.Categories, services.CategoryInput{
			Name:        c.Name,
			Kind:        kind,
			Description: c.Description,
			Icon:        c.Icon,
			Color:       c.Color,
		})
	}

	for i, r := range tmp.Rates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("rate %d: incorrect rate %q: %w", i, r.Rate, err)
		}
		seed := SeedRate{Base: models.CurrencyCode(r.Base), Quote: models.CurrencyCode(r.Quote), Rate: rate, Day: r.Day}
		if err := (services.ExchangeRateInput{Base: seed.Base, Quote: seed.Quote, Rate: rate}).Validate(); err != nil {
			return nil, fmt.Errorf("rate %d (%s/%s): %w", i, r.Base, r.Quote, err)
		}
		if r.Day < 0 {
			return nil, fmt.Errorf("rate %d: day offset must not be negative", i)
		}
		data.Rates = append(data.Rates, seed)
	}

	ids := make(map[string]bool, len(tmp.Presets))
	for i, p := range tmp.Presets {
		if p.ID == "" || ids[p.ID] {
			return nil, fmt.Errorf("preset %d: id %q is empty or duplicated", i, p.ID)
		}
		ids[p.ID] = true

		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("preset %s: incorrect amount %q: %w", p.ID, p.Amount, err)
		}
		draft := services.TransactionDraft{
			Type:   models.TransactionType(p.Type),
			Amount: models.NewMoney(amount, models.CurrencyCode(p.Currency)),
		}
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.ID, err)
		}
		if p.Category != "" && !names[p.Category] {
			return nil, fmt.Errorf("preset %s: unknown category %q", p.ID, p.Category)
		}
		data.Presets = append(data.Presets, Preset{
			ID:          p.ID,
			Label:       p.Label,
			Description: p.Description,
			Type:        draft.Type,
			Category:    p.Category,
			Merchant:    p.Merchant,
			Tags:        p.Tags,
			Note:        p.Note,
			Amount:      draft.Amount,
		})
	}

	return data, nil
}

// RatesFor positions the seed rates in the month containing at.
func (d *Data) RatesFor(at time.Time) []services.ExchangeRateInput {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]services.ExchangeRateInput, 0, len(d.Rates))
	for _, r := range d.Rates {
		out = append(out, services.ExchangeRateInput{
			Base:   r.Base,
			Quote:  r.Quote,
			Date:   start.AddDate(0, 0, r.Day),
			Rate:   r.Rate,
			Source: "refdata",
		})
	}
	return out
}

// Preset returns the preset with the given id.
func (d *Data) Preset(id string) (Preset, bool) {
	for _, p := range d.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetList returns a copy of the presets.
func (d *Data) PresetList() []Preset {
	out := make([]Preset, len(d.Presets))
	for i, p := range d.Presets {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}
