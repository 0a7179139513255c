package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocumentListsRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                               `json:"basePath"`
		Paths       map[string]map[string]map[string]any `json:"paths"`
		Definitions map[string]any                       `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	for path, method := range map[string]string{
		"/transactions":            "get",
		"/transactions/{id}":       "patch",
		"/subscriptions":           "post",
		"/dashboard/convert":       "post",
		"/pipeline/exchange-rates": "post",
		"/analytics/category-sum":  "get",
	} {
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "missing path %s", path) {
			assert.Contains(t, ops, method, "missing %s %s", method, path)
		}
	}
	for _, name := range []string{"models.Transaction", "models.ChatMessage", "finance.Conversion", "handlers.ErrorResponse"} {
		assert.Contains(t, doc.Definitions, name)
	}
}
