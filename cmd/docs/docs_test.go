package docs_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/SscSPs/resale_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/SscSPs/resale_backoffice/internal/handlers"
	"github.com/SscSPs/resale_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestDocsCoverEveryAPIRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	workspaces, err := screens.NewWorkspaces(1)
	require.NoError(t, err)
	require.NoError(t, handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{}, workspaces))

	doc := readDoc(t)
	assert.Equal(t, "/api/v1", doc.BasePath)

	const prefix = "/api/v1"
	documented := 0
	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, prefix) {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(route.Path, prefix), "{$1}")
		if path == "" {
			path = "/"
		}
		ops, ok := doc.Paths[path]
		if !assert.Truef(t, ok, "route %s %s is not documented", route.Method, path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.Truef(t, ok, "method %s missing for %s", route.Method, path)
		documented++
	}
	assert.Equal(t, documented, countOperations(doc), "docs list operations the router does not serve")
}

func TestDocsDefinitionsResolve(t *testing.T) {
	raw := docs.SwaggerInfo.ReadDoc()
	doc := readDoc(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		_, ok := doc.Definitions[ref[1]]
		assert.Truef(t, ok, "dangling reference %s", ref[1])
	}
	assert.Contains(t, doc.Definitions, "dto.ScreenResponse-array_domain_Product")
}

func countOperations(doc swaggerDoc) int {
	n := 0
	for _, ops := range doc.Paths {
		n += len(ops)
	}
	return n
}
