package refdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minify/internal/models"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	assert.Len(t, data.Categories, 7)
	assert.Len(t, data.Rates, 5)
	require.Len(t, data.Presets, 3)

	coffee, ok := data.Preset("preset-coffee")
	require.True(t, ok)
	assert.Equal(t, "Food", coffee.Category)
	assert.True(t, coffee.Amount.Amount.Equal(decimal.NewFromInt(280)))
	assert.Equal(t, models.CurrencyRUB, coffee.Amount.Currency)

	_, ok = data.Preset("preset-missing")
	assert.False(t, ok)
}

func TestRatesFor(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	rates := data.RatesFor(time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC))
	require.Len(t, rates, 5)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), rates[0].Date)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), rates[2].Date)
	assert.Equal(t, "refdata", rates[0].Source)
}

func TestPresetListIsCopy(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	list := data.PresetList()
	list[0].Tags[0] = "changed"
	assert.NotEqual(t, "changed", data.Presets[0].Tags[0])
}

func TestParseRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"unknown kind":     "categories:\n  - {name: A, kind: savings}\n",
		"duplicate name":   "categories:\n  - {name: A, kind: income}\n  - {name: A, kind: expense}\n",
		"bad rate":         "rates:\n  - {base: USD, quote: RUB, rate: abc}\n",
		"zero rate":        "rates:\n  - {base: USD, quote: RUB, rate: \"0\"}\n",
		"unknown currency": "rates:\n  - {base: USD, quote: JPY, rate: \"150\"}\n",
		"preset category":  "presets:\n  - {id: p, type: expense, category: Nope, amount: \"1\", currency: RUB}\n",
		"preset amount":    "presets:\n  - {id: p, type: expense, amount: \"-1\", currency: RUB}\n",
		"not yaml":         "categories: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - {name: Only, kind: expense}\n"), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Only", data.Categories[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
