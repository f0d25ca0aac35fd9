// Package docs регистрирует OpenAPI-описание REST API витрины для swag.
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
        "/products": {
            "get": {
                "tags": ["products"],
                "summary": "Каталог товаров",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "brand", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"enum": ["default", "price_asc", "price_desc", "rating_desc", "name_asc"], "type": "string", "name": "sort", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ListProductsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/batch": {
            "post": {
                "tags": ["products"],
                "summary": "Товары по списку идентификаторов",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.GetProductsInfoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.GetProductsInfoResponse"}}
                }
            }
        },
        "/products/{productID}": {
            "get": {
                "tags": ["products"],
                "summary": "Карточка товара",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ProductDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/metadata": {
            "get": {
                "tags": ["products"],
                "summary": "Метаданные каталога",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MetadataResponse"}}
                }
            }
        },
        "/services": {
            "get": {
                "tags": ["services"],
                "summary": "Каталог услуг",
                "produces": ["application/json"],
                "parameters": [
                    {"enum": ["delivery", "installation", "setup"], "type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ListServicesResponse"}}
                }
            }
        },
        "/quote": {
            "post": {
                "tags": ["cart"],
                "summary": "Расчёт стоимости без корзины",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.QuoteDTO"}}
                }
            }
        },
        "/carts": {
            "post": {
                "tags": ["cart"],
                "summary": "Создание корзины",
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            }
        },
        "/carts/{cartID}": {
            "get": {
                "tags": ["cart"],
                "summary": "Состояние корзины",
                "parameters": [{"type": "string", "name": "cartID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/carts/{cartID}/items": {
            "post": {
                "tags": ["cart"],
                "summary": "Добавление товара в корзину",
                "parameters": [
                    {"type": "string", "name": "cartID", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            },
            "delete": {
                "tags": ["cart"],
                "summary": "Очистка корзины",
                "parameters": [{"type": "string", "name": "cartID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            }
        },
        "/carts/{cartID}/items/{productID}": {
            "delete": {
                "tags": ["cart"],
                "summary": "Удаление позиции",
                "parameters": [
                    {"type": "string", "name": "cartID", "in": "path", "required": true},
                    {"type": "integer", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            }
        },
        "/carts/{cartID}/items/{productID}/addons/{addon}": {
            "put": {
                "tags": ["cart"],
                "summary": "Доставка или установка для позиции",
                "parameters": [
                    {"type": "string", "name": "cartID", "in": "path", "required": true},
                    {"type": "integer", "name": "productID", "in": "path", "required": true},
                    {"enum": ["delivery", "installation"], "type": "string", "name": "addon", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SetAddOnRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            }
        },
        "/carts/{cartID}/total": {
            "get": {
                "tags": ["cart"],
                "summary": "Расчёт стоимости корзины",
                "parameters": [{"type": "string", "name": "cartID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.QuoteDTO"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}
        },
        "http.ProductDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "category": {"type": "string"},
                "brand": {"type": "string"},
                "rating": {"type": "number"},
                "image": {"type": "string"},
                "specs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.ListProductsResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/http.ProductDTO"}},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "http.GetProductsInfoRequest": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "integer"}}}
        },
        "http.GetProductsInfoResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/http.ProductDTO"}},
                "not_found": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "http.MetadataResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "object", "properties": {
                    "name": {"type": "string"}, "slug": {"type": "string"}, "icon": {"type": "string"}, "count": {"type": "integer"}
                }}},
                "brands": {"type": "array", "items": {"type": "object", "properties": {
                    "name": {"type": "string"}, "count": {"type": "integer"}
                }}},
                "price_range": {"type": "object", "properties": {"min": {"type": "integer"}, "max": {"type": "integer"}}}
            }
        },
        "http.ListServicesResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "array", "items": {"type": "object", "properties": {
                    "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"},
                    "price": {"type": "integer"}, "category": {"type": "string"}, "duration_hours": {"type": "integer"}
                }}},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "http.QuoteRequest": {
            "type": "object",
            "properties": {"lines": {"type": "array", "items": {"type": "object", "properties": {
                "product_id": {"type": "integer"}, "quantity": {"type": "integer"},
                "delivery": {"type": "boolean"}, "installation": {"type": "boolean"}
            }}}}
        },
        "http.QuoteDTO": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"type": "object", "properties": {
                    "product_id": {"type": "integer"}, "name": {"type": "string"}, "unit_price": {"type": "integer"},
                    "quantity": {"type": "integer"}, "subtotal": {"type": "integer"}, "delivery": {"type": "integer"},
                    "installation": {"type": "integer"}, "total": {"type": "integer"}
                }}},
                "subtotal": {"type": "integer"},
                "delivery": {"type": "integer"},
                "installation": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "http.AddItemRequest": {
            "type": "object",
            "properties": {"product_id": {"type": "integer"}}
        },
        "http.SetAddOnRequest": {
            "type": "object",
            "properties": {"enabled": {"type": "boolean"}}
        },
        "http.CartResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "object", "properties": {
                    "product": {"$ref": "#/definitions/http.ProductDTO"},
                    "quantity": {"type": "integer"},
                    "delivery": {"type": "boolean"},
                    "installation": {"type": "boolean"}
                }}},
                "item_count": {"type": "integer"},
                "quote": {"$ref": "#/definitions/http.QuoteDTO"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Каталог товаров, фильтры и корзина с доставкой и установкой.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
