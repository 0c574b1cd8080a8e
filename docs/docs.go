// Package docs holds the Swagger description served at /swagger/index.html.
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
        "/orders": {
            "get": {
                "summary": "List travel orders visible to the actor",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "destination", "in": "query"},
                    {"type": "string", "format": "date", "name": "departure_from", "in": "query"},
                    {"type": "string", "format": "date", "name": "departure_to", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "post": {
                "summary": "Create a travel order",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "summary": "Read one travel order",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "patch": {
                "summary": "Edit destination or travel dates",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "orderId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            },
            "delete": {
                "summary": "Delete a travel order",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/orders/{orderId}/status": {
            "post": {
                "summary": "Change the order status (administrators only)",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "orderId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ChangeOrderStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/order-statuses": {
            "get": {
                "summary": "List order statuses",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.StatusResponse"}}}
                }
            },
            "post": {
                "summary": "Create a custom order status (administrators only)",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateOrderStatusRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.StatusResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/order-statuses/{statusId}": {
            "delete": {
                "summary": "Delete a custom order status (administrators only)",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "statusId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "summary": "List the actor's notifications",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "boolean", "name": "unread", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PageResponse"}}
                }
            },
            "delete": {
                "summary": "Clear the actor's notification feed",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notifications/unread-count": {
            "get": {
                "summary": "Count the actor's unread notifications",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.UnreadCountResponse"}}
                }
            }
        },
        "/notifications/read-all": {
            "post": {
                "summary": "Mark every notification of the actor as read",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notifications/{notificationId}/read": {
            "post": {
                "summary": "Mark one notification as read",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "notificationId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/notifications/{notificationId}": {
            "delete": {
                "summary": "Delete one notification",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "notificationId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/audit-entries": {
            "get": {
                "summary": "Read the audit trail (administrators only)",
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "action", "in": "query"},
                    {"type": "string", "name": "subject_type", "in": "query"},
                    {"type": "string", "name": "actor_id", "in": "query"},
                    {"type": "string", "format": "date", "name": "from", "in": "query"},
                    {"type": "string", "format": "date", "name": "to", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        }
    },
    "definitions": {
        "http.ChangeOrderStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "http.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "owner_id": {"type": "string"},
                "destination": {"type": "string"},
                "departure_date": {"type": "string", "format": "date"},
                "return_date": {"type": "string", "format": "date"}
            }
        },
        "http.CreateOrderStatusRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.OrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_id": {"type": "string"},
                "requester_name": {"type": "string"},
                "destination": {"type": "string"},
                "departure_date": {"type": "string", "format": "date"},
                "return_date": {"type": "string", "format": "date"},
                "status": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "http.PageResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "per_page": {"type": "integer"}
            }
        },
        "http.StatusResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "is_custom": {"type": "boolean"}
            }
        },
        "http.UnreadCountResponse": {
            "type": "object",
            "properties": {
                "unread": {"type": "integer"}
            }
        },
        "http.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "destination": {"type": "string"},
                "departure_date": {"type": "string", "format": "date"},
                "return_date": {"type": "string", "format": "date"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Travel Orders API",
	Description:      "Corporate travel request approval workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
