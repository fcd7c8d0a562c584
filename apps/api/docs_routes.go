package main

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-timetable/contracts"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

const swaggerUIPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Timetable API - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>body{margin:0} #swagger-ui{max-width:1400px;margin:0 auto}</style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.json',
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis]
      });
    </script>
  </body>
</html>`

// registerDocsRoutes serves the embedded contract and a Swagger UI page. These routes are public.
func registerDocsRoutes(router chi.Router, spec *openapi3.T, logger *zap.Logger) {
	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(swaggerUIPage))
	})

	router.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(contracts.TimetableYAML())
	})

	router.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		body, err := spec.MarshalJSON()
		if err != nil {
			logger.Error("marshal openapi json", zap.Error(err))
			problem.Write(w, problem.New("Internal Server Error", "failed to render contract", problem.TypeInternal, http.StatusInternalServerError, nil))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}
