// Package apidocs registers the OpenAPI description of the farm API with swag
// so the server can serve it at /swagger/. Keep it in step with the @Router
// annotations in internal/handler.
package apidocs

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/crops": {
            "get": {
                "tags": ["crops"],
                "summary": "List plantable crops",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CropsResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "Recent farm audit events, newest first",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "session", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "format": "date-time", "name": "since", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EventsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Start a new farm session",
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}}
                }
            }
        },
        "/sessions/{id}": {
            "delete": {
                "tags": ["sessions"],
                "summary": "End a farm session",
                "parameters": [{"$ref": "#/parameters/sessionID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/state": {
            "get": {
                "tags": ["sessions"],
                "summary": "Current farm snapshot",
                "parameters": [{"$ref": "#/parameters/sessionID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/weather": {
            "put": {
                "tags": ["sessions"],
                "summary": "Change the weather",
                "consumes": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/sessionID"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.WeatherRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/season": {
            "put": {
                "tags": ["sessions"],
                "summary": "Change the season label",
                "consumes": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/sessionID"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SeasonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/plots/{plot}/plant": {
            "post": {
                "tags": ["plots"],
                "summary": "Plant a crop on an empty plot",
                "consumes": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/sessionID"},
                    {"$ref": "#/parameters/plotID"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "400": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Plot not empty or not enough sun energy", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/plots/{plot}/accelerate": {
            "post": {
                "tags": ["plots"],
                "summary": "Spend sun energy to add progress to a growing plot",
                "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/plotID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Plot not growing or not enough sun energy", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/plots/{plot}/harvest": {
            "post": {
                "tags": ["plots"],
                "summary": "Harvest a ready plot",
                "parameters": [{"$ref": "#/parameters/sessionID"}, {"$ref": "#/parameters/plotID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.FarmStateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Plot not ready", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "sessionID": {"type": "string", "name": "id", "in": "path", "required": true, "description": "Session ID"},
        "plotID": {"type": "integer", "name": "plot", "in": "path", "required": true, "description": "Plot index"}
    },
    "definitions": {
        "domain.CropDefinition": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "growth_stages": {"type": "integer"},
                "total_growth_time": {"type": "number"},
                "harvest_reward": {"type": "integer"},
                "cost": {"type": "integer"}
            }
        },
        "domain.PlotView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "crop_id": {"type": "string"},
                "progress": {"type": "number"},
                "status": {"type": "string", "enum": ["empty", "growing", "ready"]},
                "planted_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.FarmState": {
            "type": "object",
            "properties": {
                "balance": {"type": "integer"},
                "plots": {"type": "array", "items": {"$ref": "#/definitions/domain.PlotView"}},
                "weather": {"type": "string", "enum": ["sunny", "rainy", "snowy"]},
                "season": {"type": "string", "enum": ["spring", "summer", "autumn", "winter"]}
            }
        },
        "eventlog.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "event_type": {"type": "string"},
                "session_id": {"type": "string"},
                "payload": {"type": "object"},
                "metadata": {"type": "object"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.CropsResponse": {
            "type": "object",
            "properties": {"crops": {"type": "array", "items": {"$ref": "#/definitions/domain.CropDefinition"}}}
        },
        "handler.EventsResponse": {
            "type": "object",
            "properties": {"events": {"type": "array", "items": {"$ref": "#/definitions/eventlog.Event"}}}
        },
        "handler.FarmStateResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "state": {"$ref": "#/definitions/domain.FarmState"}
            }
        },
        "handler.PlantRequest": {
            "type": "object",
            "required": ["crop_id"],
            "properties": {"crop_id": {"type": "string", "maxLength": 64}}
        },
        "handler.WeatherRequest": {
            "type": "object",
            "required": ["weather"],
            "properties": {"weather": {"type": "string", "enum": ["sunny", "rainy", "snowy"]}}
        },
        "handler.SeasonRequest": {
            "type": "object",
            "required": ["season"],
            "properties": {"season": {"type": "string", "enum": ["spring", "summer", "autumn", "winter"]}}
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Taskfarm API",
	Description:      "Farm growth simulation: sessions, plots, weather and the sun energy economy.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
