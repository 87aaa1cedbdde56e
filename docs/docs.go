// Package docs registers the swagger spec served at /swagger/* by every
// service binary.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a new user"}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log a user in"}
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List all users", "security": [{"ApiKeyAuth": []}]}
        },
        "/users/{id}": {
            "delete": {"tags": ["users"], "summary": "Delete a user", "security": [{"ApiKeyAuth": []}]}
        },
        "/products": {
            "get": {"tags": ["products"], "summary": "List all products"},
            "post": {"tags": ["products"], "summary": "Create a product", "security": [{"ApiKeyAuth": []}]}
        },
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product by ID"},
            "put": {"tags": ["products"], "summary": "Update a product", "security": [{"ApiKeyAuth": []}]},
            "delete": {"tags": ["products"], "summary": "Delete a product", "security": [{"ApiKeyAuth": []}]}
        },
        "/orders": {
            "get": {"tags": ["orders"], "summary": "List all orders", "security": [{"ApiKeyAuth": []}]},
            "post": {"tags": ["orders"], "summary": "Create an order", "security": [{"ApiKeyAuth": []}]}
        },
        "/orders/myorders": {
            "get": {"tags": ["orders"], "summary": "List the requester's orders", "security": [{"ApiKeyAuth": []}]}
        },
        "/orders/{id}": {
            "get": {"tags": ["orders"], "summary": "Get an order by ID", "security": [{"ApiKeyAuth": []}]}
        },
        "/orders/{id}/deliver": {
            "put": {"tags": ["orders"], "summary": "Mark an order delivered", "security": [{"ApiKeyAuth": []}]}
        },
        "/ping": {
            "get": {"tags": ["health"], "summary": "Health check"}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Split e-commerce backend: auth, product catalog and order services",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
