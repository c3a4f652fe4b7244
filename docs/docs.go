// Package docs holds the OpenAPI description served at /swagger/*any.
// Keep it in step with the @ annotations on the handlers.
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
        "/auth/sign-in": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.authCredentials"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "Obtain a bearer token",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.authCredentials"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "integer"
                            },
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "Register a user",
                "tags": [
                    "auth"
                ]
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Health check",
                "tags": [
                    "system"
                ]
            }
        },
        "/sauna/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SaunaID"
                        }
                    }
                },
                "summary": "Discover the sauna",
                "tags": [
                    "Sauna Discovery"
                ]
            }
        },
        "/sauna/{sauna_id}/events": {
            "get": {
                "description": "Mutations recorded for this sauna. If 'to' is date-only it covers the whole day.",
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')",
                        "example": "2025-08-01",
                        "in": "query",
                        "name": "from",
                        "type": "string"
                    },
                    {
                        "description": "End of range, inclusive",
                        "example": "2025-08-31",
                        "in": "query",
                        "name": "to",
                        "type": "string"
                    },
                    {
                        "description": "Event type",
                        "enum": [
                            "STATUS_UPDATE",
                            "SCHEDULES_ADDED",
                            "SCHEDULE_DELETED"
                        ],
                        "in": "query",
                        "name": "type",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "count, events",
                        "schema": {
                            "additionalProperties": true,
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "List sauna events",
                "tags": [
                    "Events"
                ]
            }
        },
        "/sauna/{sauna_id}/programs": {
            "get": {
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Program"
                            },
                            "type": "array"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "List programs",
                "tags": [
                    "Programs"
                ]
            }
        },
        "/sauna/{sauna_id}/schedules": {
            "get": {
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Schedule"
                            },
                            "type": "array"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "List schedules",
                "tags": [
                    "Schedules"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "All-or-nothing: if any id already exists (or repeats in the body) nothing is added.",
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Schedules to add",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Schedule"
                            },
                            "type": "array"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Schedule"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Add schedules",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/sauna/{sauna_id}/schedules/{schedule_id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Schedule ID",
                        "in": "path",
                        "name": "schedule_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Schedule"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Sauna ID or Schedule ID not found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a schedule",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/sauna/{sauna_id}/status": {
            "get": {
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Status"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "Get sauna status",
                "tags": [
                    "Status"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "description": "Only the fields present in the body are changed. A list field replaces the whole list.",
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.StatusUpdate"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Status"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update sauna status",
                "tags": [
                    "Status"
                ]
            }
        },
        "/sauna/{sauna_id}/status/ws": {
            "get": {
                "description": "Upgrades to a WebSocket and pushes {\"type\":\"status\",\"data\":Status} every interval.",
                "parameters": [
                    {
                        "description": "Sauna ID",
                        "in": "path",
                        "name": "sauna_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Go duration, max 10s",
                        "example": "2s",
                        "in": "query",
                        "name": "interval",
                        "type": "string"
                    },
                    {
                        "description": "Milliseconds, max 10000",
                        "in": "query",
                        "name": "interval_ms",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.HTTPError"
                        }
                    }
                },
                "summary": "Stream sauna status",
                "tags": [
                    "Status"
                ]
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "properties": {
                "password": {
                    "example": "s3cret",
                    "type": "string"
                },
                "username": {
                    "example": "owner@example.com",
                    "type": "string"
                }
            },
            "required": [
                "password",
                "username"
            ],
            "type": "object"
        },
        "models.Color": {
            "properties": {
                "b": {
                    "example": 255,
                    "maximum": 255,
                    "minimum": 0,
                    "type": "integer"
                },
                "g": {
                    "example": 255,
                    "maximum": 255,
                    "minimum": 0,
                    "type": "integer"
                },
                "r": {
                    "example": 255,
                    "maximum": 255,
                    "minimum": 0,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.Frequency": {
            "enum": [
                "once",
                "daily",
                "weekly",
                "weekdays",
                "weekends"
            ],
            "type": "string",
            "x-enum-varnames": [
                "FrequencyOnce",
                "FrequencyDaily",
                "FrequencyWeekly",
                "FrequencyWeekdays",
                "FrequencyWeekends"
            ]
        },
        "models.HTTPError": {
            "properties": {
                "detail": {
                    "example": "Sauna ID does not exist",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Heater": {
            "properties": {
                "level": {
                    "example": 0,
                    "minimum": 0,
                    "type": "integer"
                },
                "name": {
                    "example": "A",
                    "type": "string"
                }
            },
            "required": [
                "name"
            ],
            "type": "object"
        },
        "models.Light": {
            "properties": {
                "brightness": {
                    "example": 1,
                    "maximum": 1,
                    "minimum": 0,
                    "type": "number"
                },
                "color": {
                    "$ref": "#/definitions/models.Color"
                },
                "identifier": {
                    "example": "ceiling",
                    "type": "string"
                },
                "state": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.LightState"
                        }
                    ],
                    "enum": [
                        "on",
                        "off"
                    ],
                    "example": "on"
                }
            },
            "required": [
                "identifier",
                "state"
            ],
            "type": "object"
        },
        "models.LightState": {
            "enum": [
                "on",
                "off"
            ],
            "type": "string",
            "x-enum-varnames": [
                "LightOn",
                "LightOff"
            ]
        },
        "models.Program": {
            "properties": {
                "heaters": {
                    "items": {
                        "$ref": "#/definitions/models.Heater"
                    },
                    "type": "array"
                },
                "lights": {
                    "items": {
                        "$ref": "#/definitions/models.Light"
                    },
                    "type": "array"
                },
                "name": {
                    "example": "evening",
                    "type": "string"
                },
                "target_temperature": {
                    "example": 50,
                    "type": "number"
                },
                "timer_duration": {
                    "example": 30,
                    "minimum": 0,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.SaunaID": {
            "properties": {
                "model_name": {
                    "example": "SOne v1",
                    "type": "string"
                },
                "sauna_id": {
                    "example": "4f1c2a9e0b7d4c3e8a6f5b2d1c0e9f8a",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Schedule": {
            "properties": {
                "first_fire_time": {
                    "example": "2021-06-27T05:03:15+11:00",
                    "type": "string"
                },
                "frequency": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Frequency"
                        }
                    ],
                    "enum": [
                        "once",
                        "daily",
                        "weekly",
                        "weekdays",
                        "weekends"
                    ],
                    "example": "once"
                },
                "id": {
                    "example": "df67888a21123f123123ee123",
                    "type": "string"
                },
                "program": {
                    "$ref": "#/definitions/models.Program"
                },
                "sauna": {
                    "type": "string"
                },
                "user": {
                    "example": "owner@example.com",
                    "type": "string"
                }
            },
            "required": [
                "first_fire_time",
                "frequency",
                "id"
            ],
            "type": "object"
        },
        "models.Status": {
            "properties": {
                "current_temperature": {
                    "example": 0,
                    "type": "number"
                },
                "firmware_version": {
                    "example": 1,
                    "type": "integer"
                },
                "heaters": {
                    "items": {
                        "$ref": "#/definitions/models.Heater"
                    },
                    "type": "array"
                },
                "lights": {
                    "items": {
                        "$ref": "#/definitions/models.Light"
                    },
                    "type": "array"
                },
                "program": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Program"
                        }
                    ],
                    "description": "currently executing"
                },
                "sauna_id": {
                    "type": "string"
                },
                "state": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.StatusState"
                        }
                    ],
                    "example": "standby"
                },
                "target_temperature": {
                    "example": 30,
                    "type": "number"
                },
                "timer": {
                    "example": 60,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.StatusState": {
            "enum": [
                "standby",
                "running",
                "off",
                "error"
            ],
            "type": "string",
            "x-enum-varnames": [
                "StateStandby",
                "StateRunning",
                "StateOff",
                "StateError"
            ]
        },
        "models.StatusUpdate": {
            "properties": {
                "current_temperature": {
                    "type": "number"
                },
                "heaters": {
                    "items": {
                        "$ref": "#/definitions/models.Heater"
                    },
                    "type": "array"
                },
                "lights": {
                    "items": {
                        "$ref": "#/definitions/models.Light"
                    },
                    "type": "array"
                },
                "program": {
                    "$ref": "#/definitions/models.Program"
                },
                "state": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.StatusState"
                        }
                    ],
                    "enum": [
                        "standby",
                        "running",
                        "off",
                        "error"
                    ]
                },
                "target_temperature": {
                    "type": "number"
                },
                "timer": {
                    "minimum": 0,
                    "type": "integer"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    }
}`

// SwaggerInfo is registered with swag under the default instance name.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SOne API",
	Description:      "REST API for sauna status fetching and control",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
