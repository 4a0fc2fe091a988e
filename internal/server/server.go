package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"portview/internal/domain"
	"portview/internal/graph"
	"portview/internal/importer"
	"portview/internal/metrics"
	"portview/internal/store"
	"portview/internal/timeline"
)

// Config for the HTTP API handler.
type Config struct {
	Store    *store.Store
	Importer importer.Importer
	BasePath string
	Log      *logrus.Logger
}

type apiErrorBody struct {
	Code    string         `json:"code" example:"invalid_import_kind"`
	Message string         `json:"message" example:"unknown import kind"`
	Details map[string]any `json:"details,omitempty" jsonschema:"type=object,additionalProperties=true" example:"{\"kind\":\"widgets\"}"`
}

type requestKey struct{}
type bodyBytesKey struct{}

// apiError models the required error envelope.
type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

// New returns an HTTP handler exposing the Portview API.
func New(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("server: store is required")
	}
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/v0"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	huma.DefaultArrayNullable = false
	// Override Huma errors to use the requested envelope.
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return newAPIError(status, "", msg, nil)
	}
	huma.NewErrorWithContext = func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity && strings.Contains(strings.ToLower(msg), "validation") {
			// Schema/request validation errors should be 400 bad_request
			status = http.StatusBadRequest
		}
		var details map[string]any
		if len(errs) > 0 {
			details = map[string]any{"errors": errs}
		}
		return newAPIError(status, "", msg, details)
	}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bodyBytes, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			ctx := context.WithValue(r.Context(), requestKey{}, r)
			ctx = context.WithValue(ctx, bodyBytesKey{}, bodyBytes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	hcfg := huma.DefaultConfig("Portview API", "0.1.0")
	hcfg.OpenAPIPath = "/openapi"
	hcfg.DocsPath = "" // custom Swagger UI below
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, basePath)

	registerDocs(router, basePath)
	registerTemplates(router, basePath)
	registerHealth(group)
	registerPortfolio(group, cfg.Store)
	registerImports(group, cfg.Store, cfg.Importer)
	registerGraph(group, cfg.Store, cfg.Log)
	registerTimeline(group, cfg.Store)
	registerMetrics(group, cfg.Store)
	registerOpenAPI(router, api, basePath)

	return router, nil
}

func newAPIError(status int, code, message string, details map[string]any) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{
		status: status,
		Body: apiErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	if errors.Is(err, importer.ErrInvalidKind) {
		return newAPIError(http.StatusNotFound, "invalid_import_kind", err.Error(), nil)
	}
	msg := err.Error()
	lowered := strings.ToLower(msg)
	switch {
	case strings.Contains(lowered, "invalid") || strings.Contains(lowered, "missing") || strings.Contains(lowered, "required"):
		return newAPIError(http.StatusBadRequest, "bad_request", msg, nil)
	default:
		return newAPIError(http.StatusInternalServerError, "internal_error", "internal error", map[string]any{"error": msg})
	}
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func bodyBytes(ctx context.Context) []byte {
	if b, ok := ctx.Value(bodyBytesKey{}).([]byte); ok {
		return b
	}
	return nil
}

func registerDocs(r chi.Router, basePath string) {
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML(basePath))
	})
}

// registerTemplates serves the import starter CSVs directly on the router;
// they are plain text downloads, not JSON resources.
func registerTemplates(r chi.Router, basePath string) {
	r.Get(path.Join(basePath, "templates/{kind}"), func(w http.ResponseWriter, req *http.Request) {
		kind, err := importer.ParseKind(chi.URLParam(req, "kind"))
		if err != nil {
			writeErrorJSON(w, http.StatusNotFound, "invalid_import_kind", err.Error())
			return
		}
		tpl, err := importer.Template(kind)
		if err != nil {
			writeErrorJSON(w, http.StatusNotFound, "invalid_import_kind", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+"-template.csv"))
		io.WriteString(w, tpl)
	})
}

func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]apiErrorBody{
		"error": {Code: code, Message: message},
	})
}

func registerOpenAPI(r chi.Router, api huma.API, basePath string) {
	var spec []byte
	specPath := path.Join(basePath, "openapi.json")
	r.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
		if spec == nil {
			oas := api.OpenAPI()
			ensureDefaultErrorResponses(oas)
			spec, _ = json.Marshal(oas)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(spec)
	})
}

func ensureDefaultErrorResponses(oas *huma.OpenAPI) {
	if oas == nil || oas.Paths == nil {
		return
	}
	for _, item := range oas.Paths {
		for _, op := range []*huma.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace,
		} {
			if op == nil {
				continue
			}
			if op.Responses == nil {
				op.Responses = map[string]*huma.Response{}
			}
			op.Responses["default"] = &huma.Response{
				Description: "Error",
				Content: map[string]*huma.MediaType{
					"application/json": {
						Schema: &huma.Schema{Ref: "#/components/schemas/ApiError"},
					},
				},
			}
		}
	}
}

func swaggerHTML(basePath string) string {
	specURL := path.Join("/", path.Join(basePath, "openapi.json"))
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Portview API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        SwaggerUIBundle({
          url: '%s',
          dom_id: '#swagger-ui'
        });
      };
    </script>
  </body>
</html>`, specURL)
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerPortfolio(api huma.API, st *store.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio",
		Method:      http.MethodGet,
		Path:        "/portfolio",
		Summary:     "Get portfolio",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body PortfolioResponse `json:"body"`
	}, error) {
		return &struct {
			Body PortfolioResponse `json:"body"`
		}{Body: portfolioResponse(st.Current())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "replace-portfolio",
		Method:      http.MethodPut,
		Path:        "/portfolio",
		Summary:     "Replace portfolio",
		Errors:      []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body domain.Portfolio `json:"body"`
	}) (*struct {
		Body PortfolioResponse `json:"body"`
	}, error) {
		if len(bodyBytes(ctx)) == 0 {
			return nil, newAPIError(http.StatusBadRequest, "bad_request", "body required", nil)
		}
		if input.Body.ID == "" {
			return nil, newAPIError(http.StatusBadRequest, "bad_request", "id is required", nil)
		}
		st.Replace(input.Body)
		return &struct {
			Body PortfolioResponse `json:"body"`
		}{Body: portfolioResponse(st.Current())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reset-portfolio",
		Method:      http.MethodPost,
		Path:        "/portfolio/reset",
		Summary:     "Reset portfolio to baseline",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body PortfolioResponse `json:"body"`
	}, error) {
		st.ResetToBaseline()
		return &struct {
			Body PortfolioResponse `json:"body"`
		}{Body: portfolioResponse(st.Current())}, nil
	})
}

func registerImports(api huma.API, st *store.Store, im importer.Importer) {
	huma.Register(api, huma.Operation{
		OperationID: "import-csv",
		Method:      http.MethodPost,
		Path:        "/imports/{kind}",
		Summary:     "Import entities from CSV",
		Description: "Parses the uploaded CSV and merges the mapped rows into the portfolio. Always responds 200; a failed parse is reported in the outcome body.",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		Kind    string `path:"kind"`
		RawBody []byte `contentType:"text/csv"`
	}) (*struct {
		Body importer.Outcome `json:"body"`
	}, error) {
		kind, err := importer.ParseKind(input.Kind)
		if err != nil {
			return nil, handleError(err)
		}
		outcome := im.ImportFile(input.RawBody, kind)
		if outcome.Success {
			st.MergeImported(outcome.Batch)
		}
		return &struct {
			Body importer.Outcome `json:"body"`
		}{Body: outcome}, nil
	})
}

func registerGraph(api huma.API, st *store.Store, log *logrus.Logger) {
	builder := graph.Builder{Log: log}
	huma.Register(api, huma.Operation{
		OperationID: "get-graph",
		Method:      http.MethodGet,
		Path:        "/graph",
		Summary:     "Portfolio relationship graph",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body graph.Graph `json:"body"`
	}, error) {
		return &struct {
			Body graph.Graph `json:"body"`
		}{Body: builder.Build(st.Current())}, nil
	})
}

func registerTimeline(api huma.API, st *store.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "get-timeline",
		Method:      http.MethodGet,
		Path:        "/timeline",
		Summary:     "Milestone timeline",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body timeline.View `json:"body"`
	}, error) {
		return &struct {
			Body timeline.View `json:"body"`
		}{Body: timeline.Derive(st.Current())}, nil
	})
}

func registerMetrics(api huma.API, st *store.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "get-metrics",
		Method:      http.MethodGet,
		Path:        "/metrics",
		Summary:     "Portfolio summary metrics",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body metrics.Summary `json:"body"`
	}, error) {
		return &struct {
			Body metrics.Summary `json:"body"`
		}{Body: metrics.Compute(st.Current())}, nil
	})
}
