// Package docs registers the OpenAPI document served under /swagger/.
//
// The document follows the layout swag emits and mirrors the godoc
// annotations on the handlers; keep both in step when a route changes.
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
                "description": "Simple root endpoint that returns a welcome message.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "home"
                ],
                "summary": "Welcome endpoint",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WelcomeResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns a basic status payload and the reachability of the cache.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "home"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.HealthResponse"
                        }
                    }
                }
            }
        },
        "/sms/send": {
            "post": {
                "description": "Sends one message to every recipient in a single gateway request.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sms"
                ],
                "summary": "Send SMS",
                "parameters": [
                    {
                        "description": "Message and recipients",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.SendRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.SendResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "504": {
                        "description": "Gateway Timeout",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sms/bulk": {
            "post": {
                "description": "Splits recipients into batches and sends each batch in turn. One result per batch.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sms"
                ],
                "summary": "Send bulk SMS",
                "parameters": [
                    {
                        "description": "Message, recipients and batch size",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.BulkRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.BulkResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sms/history": {
            "get": {
                "description": "Returns a paginated list of recorded gateway requests, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sms"
                ],
                "summary": "List dispatches",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size (max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.HistoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sms/requests/{requestId}": {
            "get": {
                "description": "Returns the dispatch recorded for a gateway request id.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sms"
                ],
                "summary": "Look up a dispatch",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Gateway request id",
                        "name": "requestId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.DispatchResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sms/stats": {
            "get": {
                "description": "Returns the number of successful gateway requests on a day (UTC).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sms"
                ],
                "summary": "Daily sent count",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Day as YYYY-MM-DD, defaults to today",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.StatsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "request.BulkRequest": {
            "type": "object",
            "properties": {
                "batch_size": {
                    "description": "BatchSize is the number of recipients per gateway request. Zero uses the configured default.",
                    "type": "integer",
                    "example": 100
                },
                "dest_addr": {
                    "description": "DestAddr is one phone number or a list of them.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "0712345678"
                    ]
                },
                "encoding": {
                    "description": "Encoding is 0 (plain text, 160 chars) or 8 (unicode, 70 chars).",
                    "type": "integer",
                    "example": 0
                },
                "message": {
                    "type": "string",
                    "example": "Hello from Beem"
                },
                "source_addr": {
                    "description": "SourceAddr is the sender id. Empty uses the configured default.",
                    "type": "string",
                    "example": "INFO"
                }
            }
        },
        "request.SendRequest": {
            "type": "object",
            "properties": {
                "dest_addr": {
                    "description": "DestAddr is one phone number or a list of them.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "0712345678"
                    ]
                },
                "encoding": {
                    "description": "Encoding is 0 (plain text, 160 chars) or 8 (unicode, 70 chars).",
                    "type": "integer",
                    "example": 0
                },
                "message": {
                    "type": "string",
                    "example": "Hello from Beem"
                },
                "source_addr": {
                    "description": "SourceAddr is the sender id. Empty uses the configured default.",
                    "type": "string",
                    "example": "INFO"
                }
            }
        },
        "response.BulkPayload": {
            "type": "object",
            "properties": {
                "batches": {
                    "type": "integer"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/response.SendResultDTO"
                    }
                },
                "succeeded": {
                    "type": "integer"
                }
            }
        },
        "response.BulkResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.BulkPayload"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.DispatchDTO": {
            "type": "object",
            "properties": {
                "batch": {
                    "type": "integer"
                },
                "bulkId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "encoding": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "messageLength": {
                    "type": "integer"
                },
                "recipients": {
                    "type": "integer"
                },
                "requestId": {
                    "type": "string"
                },
                "sourceAddr": {
                    "type": "string"
                },
                "statusCode": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "response.DispatchResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.DispatchDTO"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.HealthPayload": {
            "type": "object",
            "properties": {
                "cache": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "response.HealthResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.HealthPayload"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.HistoryPayload": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/response.DispatchDTO"
                    }
                },
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "response.HistoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.HistoryPayload"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.SendResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.SendResultDTO"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.SendResultDTO": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "requestId": {
                    "type": "string"
                },
                "responseBody": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "statusCode": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "response.StatsPayload": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "sent": {
                    "type": "integer"
                }
            }
        },
        "response.StatsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.StatsPayload"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.WelcomePayload": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "response.WelcomeResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/response.WelcomePayload"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Beem SMS Gateway API",
	Description:      "HTTP front for sending SMS through the Beem gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
