package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_RegisteredAndValid(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), raw)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "SOne API", doc.Info.Title)
	assert.Equal(t, "0.1.0", doc.Info.Version)

	for path, method := range map[string]string{
		"/sauna/ping":                               "get",
		"/sauna/{sauna_id}/status":                  "put",
		"/sauna/{sauna_id}/schedules":               "post",
		"/sauna/{sauna_id}/schedules/{schedule_id}": "delete",
		"/sauna/{sauna_id}/events":                  "get",
	} {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method, path)
	}
	for _, def := range []string{"models.Status", "models.StatusUpdate", "models.Schedule", "models.HTTPError"} {
		assert.Contains(t, doc.Definitions, def)
	}
}
