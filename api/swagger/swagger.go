package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Vedss API",
        "description": "Personal relationship organizer: photos, events, study tasks, notes and live reminders",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Photos", "description": "Gallery uploads and metadata"},
        {"name": "Events", "description": "Calendar events"},
        {"name": "Study", "description": "Study items"},
        {"name": "Notes", "description": "Notes"},
        {"name": "Export", "description": "CSV/PDF downloads"},
        {"name": "Notifications", "description": "Live reminder stream"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/photos": {
            "get": {
                "tags": ["Photos"],
                "summary": "List gallery photos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/photos/upload": {
            "post": {
                "tags": ["Photos"],
                "summary": "Upload a photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "photo", "in": "formData", "type": "file", "required": true},
                    {"name": "title", "in": "formData", "type": "string"},
                    {"name": "description", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large"},
                    "415": {"description": "Not an image"}
                }
            }
        },
        "/photos/{id}": {
            "put": {
                "tags": ["Photos"],
                "summary": "Edit photo metadata",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PhotoUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Photos"],
                "summary": "Delete a photo and its file",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List calendar events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create a calendar event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/events/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Export calendar events",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Replace a calendar event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete a calendar event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/study": {
            "get": {
                "tags": ["Study"],
                "summary": "List study items",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Study"],
                "summary": "Create a study item",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudyItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/study/{id}": {
            "put": {
                "tags": ["Study"],
                "summary": "Replace a study item",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudyItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Study"],
                "summary": "Delete a study item",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Create a note",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/notes/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Export notes",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/notes/{id}": {
            "put": {
                "tags": ["Notes"],
                "summary": "Replace a note",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Notes"],
                "summary": "Delete a note",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/notifications/stream": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Subscribe to reminder broadcasts",
                "description": "Server-sent event stream carrying sweetReminder and eventReminder messages.",
                "produces": ["text/event-stream"],
                "responses": {
                    "200": {"description": "Event stream"}
                }
            }
        }
    },
    "definitions": {
        "EventRequest": {
            "type": "object",
            "required": ["title", "date"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "time": {"type": "string"},
                "type": {"type": "string", "enum": ["date", "anniversary", "birthday", "study", "reminder", "other"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "recurring": {"type": "boolean"},
                "recurring_type": {"type": "string", "enum": ["daily", "weekly", "monthly", "yearly"]},
                "notified": {"type": "boolean"}
            }
        },
        "StudyItemRequest": {
            "type": "object",
            "required": ["title", "type"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string", "enum": ["assignment", "exam", "project", "reading", "flashcard", "note", "timer"]},
                "subject": {"type": "string"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "due_date": {"type": "string", "format": "date-time"},
                "completed": {"type": "boolean"},
                "time_spent": {"type": "integer"},
                "progress": {"type": "integer"}
            }
        },
        "NoteRequest": {
            "type": "object",
            "required": ["title", "content"],
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "type": {"type": "string", "enum": ["love-note", "study-note", "reminder", "memory", "other"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "color": {"type": "string"},
                "pinned": {"type": "boolean"},
                "mood": {"type": "string", "enum": ["happy", "love", "excited", "calm", "motivated", "grateful", "other"]}
            }
        },
        "PhotoUpdateRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "favorite": {"type": "boolean"}
            }
        },
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
