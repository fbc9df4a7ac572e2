package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/vadim/neo-studio/internal/httpx/response"
)

const swaggerUITemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} - API Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; } .swagger-ui .topbar { display: none; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: "{{.SpecURL}}",
      dom_id: "#swagger-ui",
      deepLinking: true,
      presets: [SwaggerUIBundle.presets.apis],
      tagsSorter: "alpha",
      operationsSorter: "method",
      docExpansion: "list",
      tryItOutEnabled: true
    });
  </script>
</body>
</html>`

// SwaggerHandler handles Swagger UI and OpenAPI document endpoints
type SwaggerHandler struct {
	title   string
	specURL string
	spec    []byte
}

// NewSwaggerHandler creates a new Swagger handler
func NewSwaggerHandler(title string, spec []byte) *SwaggerHandler {
	return &SwaggerHandler{
		title:   title,
		specURL: "/docs/openapi.yaml",
		spec:    spec,
	}
}

// RegisterRoutes registers Swagger routes
func (h *SwaggerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/docs", h.UI())
	r.Get("/docs/", http.RedirectHandler("/docs", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/openapi.yaml", h.Spec())
	r.Get("/docs/openapi.json", h.SpecJSON())
}

// UI serves the Swagger UI HTML page
func (h *SwaggerHandler) UI() http.HandlerFunc {
	tmpl := template.Must(template.New("swagger").Parse(swaggerUITemplate))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		data := struct {
			Title   string
			SpecURL string
		}{
			Title:   h.title,
			SpecURL: h.specURL,
		}

		if err := tmpl.Execute(w, data); err != nil {
			http.Error(w, "failed to render template", http.StatusInternalServerError)
		}
	}
}

// Spec serves the OpenAPI document in YAML format
func (h *SwaggerHandler) Spec() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(h.spec)
	}
}

// SpecJSON serves the OpenAPI document converted to JSON
func (h *SwaggerHandler) SpecJSON() http.HandlerFunc {
	var (
		once    sync.Once
		payload []byte
		convErr error
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			payload, convErr = YAMLToJSON(h.spec)
		})
		if convErr != nil {
			response.InternalError(w, "openapi document is not valid YAML")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(payload)
	}
}

// YAMLToJSON re-encodes a YAML document as JSON
func YAMLToJSON(in []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	out, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return out, nil
}

// normalizeYAML turns map[any]any nodes into map[string]any so encoding/json accepts them.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i := range t {
			t[i] = normalizeYAML(t[i])
		}
		return t
	default:
		return v
	}
}
