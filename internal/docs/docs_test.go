package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Beem SMS Gateway API", doc.Info.Title)

	routes := map[string]string{
		"/":                         "get",
		"/health":                   "get",
		"/sms/send":                 "post",
		"/sms/bulk":                 "post",
		"/sms/history":              "get",
		"/sms/requests/{requestId}": "get",
		"/sms/stats":                "get",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		assert.Contains(t, doc.Paths[path], method, path)
	}

	assert.Contains(t, doc.Definitions, "request.SendRequest")
	assert.Contains(t, doc.Definitions, "response.SendResponse")
}
