package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>blog-service Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Every answer is wrapped in the envelope schema. Not-found answers are HTTP 200
// unless HTTP_STRICT_STATUS is enabled.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blog-service", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Blog": { "type": "object", "properties": {
        "_id": {"type":"string"}, "title": {"type":"string"}, "body": {"type":"string"}, "author": {"type":"string"},
        "is_deleted": {"type":"boolean"}, "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "Envelope": { "type": "object", "properties": {
        "success": {"type":"boolean"}, "statusCode": {"type":"integer"}, "message": {"type":"string"},
        "data": {}, "error": {}, "errors": {"type":"array","items":{"type":"object"}} } }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Welcome message", "responses": { "200": { "description": "welcome envelope" } } } },
    "/blogs/list": {
      "get": {
        "summary": "List blogs that are not deleted",
        "parameters": [ { "name": "sort", "in": "query", "schema": {"type":"string"}, "example": "-createdAt,title" } ],
        "responses": { "200": { "description": "envelope with a list of blogs" }, "500": { "description": "store failure" } }
      }
    },
    "/blogs/create": {
      "post": {
        "summary": "Create a blog",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","body","author"],"properties":{"title":{"type":"string"},"body":{"type":"string"},"author":{"type":"string"}}}}}},
        "responses": { "200": { "description": "envelope with the created blog" }, "400": { "description": "malformed JSON body" }, "500": { "description": "validation or store failure" } }
      }
    },
    "/blogs/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
      "get": { "summary": "Read a blog", "responses": { "200": { "description": "envelope with the blog, or statusCode 400 Not found" }, "404": { "description": "not found (strict mode)" } } },
      "delete": { "summary": "Soft-delete a blog", "responses": { "200": { "description": "envelope with the updated blog, or statusCode 404 Not found" }, "404": { "description": "not found (strict mode)" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition format" } } } }
  }
}`
