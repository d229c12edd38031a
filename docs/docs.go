// Package docs registers the OpenAPI description served at /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness message",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/webhooks/openai-status": {
            "post": {
                "description": "Receives an incident update, classifies the affected product and logs it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Statuspage webhook",
                "parameters": [
                    {
                        "description": "Statuspage incident payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/status_monitor.StatusPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "description": "Exchanges operator credentials for a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Operator sign-in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.authCredentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/incidents": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Incidents recorded by the feed poller. A date-only 'to' is treated as end of day inclusive.",
                "produces": ["application/json"],
                "tags": ["incidents"],
                "summary": "List detected incidents",
                "parameters": [
                    {"type": "string", "example": "2025-06-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-06-30", "description": "End of range", "name": "to", "in": "query"},
                    {"type": "string", "description": "Exact product label", "name": "product", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, incidents", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object"}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "WebSocket. Sends a hello envelope, then one {\"type\":\"incident\"} envelope per accepted webhook.",
                "tags": ["stream"],
                "summary": "Live incident stream",
                "responses": {}
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "status_monitor.IncidentUpdate": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "id": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "status_monitor.Incident": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "impact": {"type": "string"},
                "incident_updates": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/status_monitor.IncidentUpdate"}
                },
                "name": {"type": "string"},
                "shortlink": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "status_monitor.Page": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status_description": {"type": "string"},
                "status_indicator": {"type": "string"}
            }
        },
        "status_monitor.StatusPayload": {
            "type": "object",
            "properties": {
                "incident": {"$ref": "#/definitions/status_monitor.Incident"},
                "page": {"$ref": "#/definitions/status_monitor.Page"}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "OpenAI Status Monitor API",
	Description:      "Statuspage webhook receiver, incident history and live stream.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
