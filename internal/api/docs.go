package api

//go:generate go tool oapi-codegen -config config.yaml openapi.yaml

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument string

// SwaggerInfo is the registered API description served by the docs routes.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Online Payments Gateway",
	Description:      "Card payments through the CAWL, ANZ Worldline and PayOne platforms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  openAPIDocument,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Online Payments Gateway</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => { SwaggerUIBundle({ url: "/openapi.yaml", dom_id: "#swagger-ui" }); };
  </script>
</body>
</html>`

// RegisterDocsRoutes serves the API description and a Swagger UI page.
func RegisterDocsRoutes(mux ServeMux) {
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(doc))
	})

	mux.HandleFunc("GET /docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(docsPage))
	})
}

// LoadSpec parses and validates the registered API description.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("failed to read openapi document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}
