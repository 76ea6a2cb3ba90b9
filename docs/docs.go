// Package docs holds the generated Swagger specification.
// Regenerate with: swag init -g cmd/arabshield-api/main.go -o docs
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}
            }
        },
        "/settings": {
            "get": {
                "tags": ["settings"],
                "summary": "Current system settings",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["settings"],
                "summary": "Update multiple settings",
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}
            }
        },
        "/settings/{key}": {
            "patch": {
                "tags": ["settings"],
                "summary": "Update one setting",
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}
            }
        },
        "/audit": {
            "get": {
                "tags": ["audit"],
                "summary": "Recent audit log entries",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Current user profile",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{id}/role": {
            "put": {
                "tags": ["profile"],
                "summary": "Change a user's role",
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}
            }
        },
        "/notifications": {
            "get": {
                "tags": ["notifications"],
                "summary": "List my notifications",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chat/ask": {
            "post": {
                "tags": ["chat"],
                "summary": "Ask the FAQ chat widget",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ArabShield Platform API",
	Description:      "Bilingual marketing site and client dashboard backend: auth, settings, audit trail, notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
