// Package docs registers the OpenAPI document served under /v1/api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenPairResponse"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/auth/refreshToken": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new access token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccessTokenResponse"}},
                    "401": {"description": "Refresh token expired or unverifiable", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Invalidate the presented access token (admin only)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/users/signup": {
            "post": {
                "tags": ["users"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/dto.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SignupResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "List users",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "in": "query", "name": "limit"},
                    {"type": "integer", "in": "query", "name": "offset"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}
                }
            }
        },
        "/stores": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stores"],
                "summary": "List stores",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.StoreResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["stores"],
                "summary": "Create a store owned by the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "store", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStoreRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StoreResponse"}}
                }
            }
        },
        "/stores/{storeId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stores"],
                "summary": "Get a store",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "storeId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StoreResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["stores"],
                "summary": "Update a store",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "storeId", "required": true},
                    {"in": "body", "name": "store", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StoreResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["stores"],
                "summary": "Delete a store and its products",
                "parameters": [{"type": "string", "in": "path", "name": "storeId", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/stores/{storeId}/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "List products of a store",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "storeId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Add a product to a store",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "storeId", "required": true},
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/products/{productId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Get a product",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "productId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Update a product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "productId", "required": true},
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "string", "in": "path", "name": "productId", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/products/{productId}/reviews": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "List reviews of a product",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "productId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ReviewResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "List all orders (admin only)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.OrderResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Place an order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/dto.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorBody"}},
                    "404": {"description": "Unknown products", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/orders/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "List the caller's orders",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.OrderResponse"}}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Get one of the caller's orders",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "orderId", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Change the items of a pending order or complete it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "orderId", "required": true},
                    {"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}},
                    "409": {"description": "Order already completed", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["orders"],
                "summary": "Delete one of the caller's orders",
                "parameters": [{"type": "string", "in": "path", "name": "orderId", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/reviews": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Review a product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "review", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ReviewResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        },
        "/reviews/{reviewId}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Update one of the caller's reviews",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "reviewId", "required": true},
                    {"in": "body", "name": "review", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReviewResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Delete one of the caller's reviews",
                "parameters": [{"type": "string", "in": "path", "name": "reviewId", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "errorBody": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "statusCode": {"type": "integer"},
                            "code": {"type": "string"},
                            "publicMessage": {"type": "string"}
                        }
                    }
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 6}}
        },
        "dto.RefreshRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {"refreshToken": {"type": "string"}}
        },
        "dto.TokenPairResponse": {
            "type": "object",
            "properties": {"accessToken": {"type": "string"}, "refreshToken": {"type": "string"}}
        },
        "dto.AccessTokenResponse": {
            "type": "object",
            "properties": {"accessToken": {"type": "string"}}
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "dto.SignupRequest": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 6},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "dto.SignupResponse": {
            "type": "object",
            "properties": {"userId": {"type": "string"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "dto.CreateStoreRequest": {
            "type": "object",
            "required": ["name", "description"],
            "properties": {
                "name": {"type": "string", "minLength": 6},
                "description": {"type": "string", "minLength": 12, "maxLength": 100}
            }
        },
        "dto.UpdateStoreRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 6},
                "description": {"type": "string", "minLength": 12, "maxLength": 100},
                "active": {"type": "boolean"}
            }
        },
        "dto.StoreResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ownerId": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "active": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreateProductRequest": {
            "type": "object",
            "required": ["name", "description", "quantity", "minQuantity", "unitPrice"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string", "minLength": 12, "maxLength": 100},
                "quantity": {"type": "integer", "minimum": 0},
                "minQuantity": {"type": "integer", "minimum": 0},
                "unitPrice": {"type": "number"}
            }
        },
        "dto.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string", "minLength": 12, "maxLength": 100},
                "quantity": {"type": "integer", "minimum": 0},
                "minQuantity": {"type": "integer", "minimum": 0},
                "unitPrice": {"type": "number"},
                "active": {"type": "boolean"}
            }
        },
        "dto.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "storeId": {"type": "string"},
                "ownerId": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "quantity": {"type": "integer"},
                "minQuantity": {"type": "integer"},
                "unitPrice": {"type": "number"},
                "active": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.OrderItem": {
            "type": "object",
            "required": ["productId", "quantity"],
            "properties": {"productId": {"type": "string"}, "quantity": {"type": "integer", "minimum": 1}}
        },
        "dto.CreateOrderRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {"items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/dto.OrderItem"}}}
        },
        "dto.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/dto.OrderItem"}},
                "status": {"type": "string", "enum": ["completed"]}
            }
        },
        "dto.OrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "orderNumber": {"type": "string"},
                "ownerId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.OrderItem"}},
                "totalPrice": {"type": "number"},
                "status": {"type": "string", "enum": ["pending", "completed"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreateReviewRequest": {
            "type": "object",
            "required": ["productId", "title", "content", "stars"],
            "properties": {
                "productId": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string", "minLength": 12, "maxLength": 100},
                "stars": {"type": "integer", "minimum": 0, "maximum": 5}
            }
        },
        "dto.UpdateReviewRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string", "minLength": 12, "maxLength": 100},
                "stars": {"type": "integer", "minimum": 0, "maximum": 5}
            }
        },
        "dto.ReviewResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "productId": {"type": "string"},
                "ownerId": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "stars": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Stores, products, orders, reviews and token based authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
