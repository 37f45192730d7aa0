// Package docs registers the storefront OpenAPI document with swag.
// Regenerate with: swag init -g cmd/storefront/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/catalog/products": {"get": {"tags": ["Catalog"], "summary": "List a page of products", "responses": {"200": {"description": "OK"}}}},
        "/api/catalog/products/count": {"get": {"tags": ["Catalog"], "summary": "Count products per category", "responses": {"200": {"description": "OK"}}}},
        "/api/catalog/products/{id}": {"get": {"tags": ["Catalog"], "summary": "Get a product", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/catalog/categories": {"get": {"tags": ["Catalog"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/api/cart": {
            "get": {"tags": ["Cart"], "security": [{"BearerAuth": []}], "summary": "List cart lines", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Cart"], "security": [{"BearerAuth": []}], "summary": "Add a product to the cart", "responses": {"201": {"description": "Created"}}},
            "patch": {"tags": ["Cart"], "security": [{"BearerAuth": []}], "summary": "Update a cart line quantity", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Cart"], "security": [{"BearerAuth": []}], "summary": "Remove a cart line", "responses": {"200": {"description": "OK"}}}
        },
        "/api/favorite": {
            "get": {"tags": ["Favorites"], "security": [{"BearerAuth": []}], "summary": "List favorites", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Favorites"], "security": [{"BearerAuth": []}], "summary": "Add a favorite", "responses": {"201": {"description": "Created"}}},
            "delete": {"tags": ["Favorites"], "security": [{"BearerAuth": []}], "summary": "Remove a favorite", "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}}}},
        "/api/auth/login": {"post": {"tags": ["Auth"], "summary": "Login user", "responses": {"200": {"description": "OK"}}}},
        "/api/profile": {
            "get": {"tags": ["Profile"], "security": [{"BearerAuth": []}], "summary": "Get the current user's profile", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Profile"], "security": [{"BearerAuth": []}], "summary": "Update the current user's profile", "responses": {"200": {"description": "OK"}}}
        },
        "/api/checkout": {"post": {"tags": ["Orders"], "security": [{"BearerAuth": []}], "summary": "Check out the cart", "responses": {"201": {"description": "Created"}}}},
        "/api/orders": {"get": {"tags": ["Orders"], "security": [{"BearerAuth": []}], "summary": "List the caller's orders", "responses": {"200": {"description": "OK"}}}},
        "/api/orders/{orderId}": {"get": {"tags": ["Orders"], "security": [{"BearerAuth": []}], "summary": "Track an order", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Storefront backend: catalog proxy, cart, favorites, profiles and simulated checkout",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
