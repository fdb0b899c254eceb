package http

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>PeopleDesk API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: "/docs/openapi.json",
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>`

type DocsHandler interface {
	UI(w http.ResponseWriter, r *http.Request)
	OpenAPI(w http.ResponseWriter, r *http.Request)
}

type docsHandlerImpl struct{}

func NewDocsHandler() DocsHandler {
	return &docsHandlerImpl{}
}

// UI implements DocsHandler - serves the Swagger UI page
func (h *docsHandlerImpl) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerPage))
}

// OpenAPI implements DocsHandler - serves the embedded OpenAPI document
func (h *docsHandlerImpl) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openAPISpec)
}
