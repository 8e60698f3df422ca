// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/records": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List member records",
                "parameters": [
                    {"enum": ["national_id", "id", "name"], "type": "string", "description": "Sort order", "name": "order_by", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RowsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Create a member record",
                "parameters": [
                    {"description": "Member data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MemberRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.RecordResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/records/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Search member records by name or national id",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RowsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/records/bulk-delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Delete several member records, stopping at the first failure",
                "parameters": [
                    {"description": "Record ids", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BulkDeleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.BulkDeleteResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.BulkDeleteFailure"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.BulkDeleteFailure"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Get a member record",
                "parameters": [{"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RecordResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Replace a member record",
                "parameters": [
                    {"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {"description": "Member data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MemberRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RecordResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Delete a member record",
                "parameters": [{"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/reports": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "List available report kinds",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/{kind}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf", "application/json"],
                "tags": ["Reports"],
                "summary": "Render a PDF report",
                "parameters": [
                    {"enum": ["active-members", "retirees", "survivors", "deceased", "birthdays"], "type": "string", "description": "Report kind", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "Day and month (DD/MM), birthdays only", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "PDF document"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "No data for this report", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.MemberRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string", "example": "Juan Perez"},
                "national_id": {"type": "string", "example": "V-12.345.678"},
                "status": {"type": "string", "example": "Retiree"},
                "is_active_member": {"type": "boolean", "example": true},
                "deceased_name": {"type": "string", "example": "Maria Perez"},
                "birth_date": {"type": "string", "example": "10/05/1960"},
                "death_date": {"type": "string", "example": "01/01/2020"},
                "phone": {"type": "string", "example": "0412-1234567"}
            }
        },
        "handlers.BulkDeleteRequest": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "integer"}}}
        },
        "handlers.BulkDeleteResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "deleted": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "handlers.BulkDeleteFailure": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "failed_id": {"type": "integer"},
                "deleted": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.RecordResponse": {
            "type": "object",
            "properties": {"record": {"type": "object"}}
        },
        "response.RowsResponse": {
            "type": "object",
            "properties": {
                "rows": {"type": "array", "items": {"type": "object"}},
                "meta": {"type": "object"}
            }
        }
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Retiree Registry API",
	Description:      "Member registry and PDF reports for the retirees' association",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
