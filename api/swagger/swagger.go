package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Boathouse API",
        "description": "Club roster, outings, coxing and river status over Notion",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Members", "description": "Club roster"},
        {"name": "Availability", "description": "Weekly availability grids"},
        {"name": "Outings", "description": "Outings and crew seats"},
        {"name": "Assignments", "description": "Draft seat assignment state"},
        {"name": "Tests", "description": "Swim and capsize test sessions"},
        {"name": "Coxing", "description": "Coxing roster and eligibility"},
        {"name": "Events", "description": "Club calendar"},
        {"name": "Flag", "description": "River flag status"},
        {"name": "Exports", "description": "Crew sheets and CSV exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/members": {
            "get": {
                "tags": ["Members"],
                "summary": "List club members",
                "parameters": [
                    {"name": "force", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Members"],
                "summary": "Sign up a new member",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/members/{id}": {
            "get": {
                "tags": ["Members"],
                "summary": "Get one member",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/members/{id}/availability": {
            "get": {
                "tags": ["Availability"],
                "summary": "Get a member's weekly availability",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Availability"],
                "summary": "Replace a member's weekly availability",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/export.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the weekly availability grid as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/outings": {
            "get": {
                "tags": ["Outings"],
                "summary": "List published outings",
                "parameters": [
                    {"name": "start", "in": "query", "type": "string"},
                    {"name": "end", "in": "query", "type": "string"},
                    {"name": "force", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}": {
            "get": {
                "tags": ["Outings"],
                "summary": "Get one outing with its crew",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}/seats": {
            "put": {
                "tags": ["Outings"],
                "summary": "Seat a member or empty a seat",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}/seat-status": {
            "put": {
                "tags": ["Outings"],
                "summary": "Record a rower's response for their seat",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}/status": {
            "put": {
                "tags": ["Outings"],
                "summary": "Update an outing's lifecycle status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}/report": {
            "get": {
                "tags": ["Outings"],
                "summary": "Read the outing debrief",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Outings"],
                "summary": "Submit debrief fields for an outing",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/outings/{id}/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Load the draft assignment state",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Assignments"],
                "summary": "Save the draft assignment state",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Assignments"],
                "summary": "Discard the draft assignment state",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Cleared"}
                }
            }
        },
        "/outings/{id}/crew-sheet.pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a printable crew sheet",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF attachment"}
                }
            }
        },
        "/tests": {
            "get": {
                "tags": ["Tests"],
                "summary": "List upcoming test sessions",
                "parameters": [
                    {"name": "force", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tests/{id}": {
            "get": {
                "tags": ["Tests"],
                "summary": "Get one test session with its slots",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tests/{id}/slots": {
            "put": {
                "tags": ["Tests"],
                "summary": "Book a member into a test slot",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tests/{id}/outcome": {
            "put": {
                "tags": ["Tests"],
                "summary": "Record the outcome of a test slot",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/coxing/availability": {
            "get": {
                "tags": ["Coxing"],
                "summary": "List per-date coxing sign-ups",
                "parameters": [
                    {"name": "start", "in": "query", "type": "string"},
                    {"name": "end", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Coxing"],
                "summary": "Add or remove a member's slot sign-up",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/coxing/eligible": {
            "get": {
                "tags": ["Coxing"],
                "summary": "Coxes eligible for a date and time slot",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "required": true},
                    {"name": "time", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/coxing/overview": {
            "get": {
                "tags": ["Coxing"],
                "summary": "Week-by-day coxing coverage overview",
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List club calendar events in date order",
                "parameters": [
                    {"name": "force", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/flag-status": {
            "get": {
                "tags": ["Flag"],
                "summary": "Current river flag status",
                "parameters": [
                    {"name": "force", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "summary": "Aggregated request, cache and upstream metrics",
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
