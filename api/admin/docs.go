// Package admin registers the swagger document of the TeamDesk HTTP API.
package admin

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/teamdesk"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "description": "Liveness probe returning uptime and version. Always 200 while the process runs.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe checking the activity database and the remote admin API",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    }
                }
            }
        },
        "/team": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Renders the team management page for the caller's view session. Waits up to the render timeout for in-flight remote calls first.",
                "produces": ["text/html"],
                "tags": ["Team"],
                "summary": "Team page",
                "parameters": [
                    {"type": "string", "description": "language override (en, es)", "name": "lang", "in": "query"},
                    {"type": "string", "description": "code of the last rejected action", "name": "rejected", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/team/activity": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists audited mutations newest first. scope=session (default) limits the list to the caller's view session; scope=all returns every session.",
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "Recent activity",
                "parameters": [
                    {"enum": ["session", "all"], "type": "string", "description": "session or all", "name": "scope", "in": "query"},
                    {"type": "integer", "description": "max entries (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ActivityListResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/team/activity/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one audited mutation by id.",
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "Activity entry",
                "parameters": [
                    {"type": "string", "description": "activity id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ActivityResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/team/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's view snapshot: rows, overlay, pagination, pending notices and the last failure. Reading does not consume notices.",
                "produces": ["application/json"],
                "tags": ["Team"],
                "summary": "Team view state",
                "parameters": [
                    {"type": "string", "description": "view session id (falls back to the session cookie)", "name": "X-Team-View", "in": "header"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.StateResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    },
                    "503": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.ActivityListResponse": {
            "type": "object",
            "properties": {
                "activity": {"type": "array", "items": {"$ref": "#/definitions/http.ActivityResponse"}}
            }
        },
        "http.ActivityResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "created_at": {"type": "string"},
                "detail": {"type": "string"},
                "id": {"type": "string"},
                "outcome": {"type": "string"},
                "session_id": {"type": "string"},
                "target_id": {"type": "string"}
            }
        },
        "http.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "remote_api": {"type": "string"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/http.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "http.SelectedUserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "http.noticeView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.StateResponse": {
            "type": "object",
            "properties": {
                "failure": {"$ref": "#/definitions/team.Failure"},
                "footer": {"type": "string"},
                "member_count": {"type": "integer"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/http.noticeView"}},
                "overlay": {"type": "string"},
                "page": {"$ref": "#/definitions/team.Page"},
                "pending": {"type": "integer"},
                "refetch": {"type": "integer"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/team.Row"}},
                "selected_user": {"$ref": "#/definitions/http.SelectedUserResponse"},
                "submitting": {"type": "boolean"},
                "view_id": {"type": "string"}
            }
        },
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "team.Failure": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "op": {"type": "string"}
            }
        },
        "team.Page": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "team.Row": {
            "type": "object",
            "properties": {
                "actions": {"type": "array", "items": {"$ref": "#/definitions/team.RowAction"}},
                "avatar_url": {"type": "string"},
                "email": {"type": "string"},
                "expired": {"type": "boolean"},
                "id": {"type": "string"},
                "initials": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "team.RowAction": {
            "type": "object",
            "properties": {
                "danger": {"type": "boolean"},
                "label": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "HS256 operator token with team:read or team:write scope. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "TeamDesk Admin API",
	Description:      "Team management view over the commerce admin API: list users and invites, edit and remove users, resend and create invites.\n\nPage routes answer with HTML and redirect after form posts. Send Accept: application/json to a form route to get the resulting view state instead.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
