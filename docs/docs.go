// Package docs registers the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        },
        "/wp_webhook": {
            "post": {
                "description": "Verifies origin IP and HMAC signature, then dispatches ORDER_PAID / ORDER_FAILED events to registered callbacks",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Receive WalletPay webhook",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Base64 HMAC-SHA256 of METHOD.PATH.TIMESTAMP.BASE64(BODY)",
                        "name": "Walletpay-Signature",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Timestamp used in the signature",
                        "name": "WalletPay-Timestamp",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Webhook events",
                        "name": "events",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/webhook.Event"}
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Event processed or acknowledged",
                        "schema": {"$ref": "#/definitions/utils.MessageResponse"}
                    },
                    "400": {
                        "description": "Invalid signature or malformed payload",
                        "schema": {"$ref": "#/definitions/utils.DetailResponse"}
                    },
                    "403": {
                        "description": "IP not allowed",
                        "schema": {"$ref": "#/definitions/utils.DetailResponse"}
                    },
                    "413": {
                        "description": "Payload too large",
                        "schema": {"$ref": "#/definitions/utils.DetailResponse"}
                    },
                    "500": {
                        "description": "Callback execution failed",
                        "schema": {"$ref": "#/definitions/utils.DetailResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "utils.DetailResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "valueobjects.MoneyAmount": {
            "type": "object",
            "required": ["amount", "currencyCode"],
            "properties": {
                "amount": {"type": "string", "example": "10.5"},
                "currencyCode": {"type": "string", "example": "TON"}
            }
        },
        "webhook.Event": {
            "type": "object",
            "required": ["eventId", "payload", "type"],
            "properties": {
                "eventDateTime": {"type": "string", "format": "date-time"},
                "eventId": {"type": "integer"},
                "payload": {"$ref": "#/definitions/webhook.Payload"},
                "type": {"type": "string", "enum": ["ORDER_PAID", "ORDER_FAILED"]}
            }
        },
        "webhook.Payload": {
            "type": "object",
            "required": ["id", "orderAmount"],
            "properties": {
                "customData": {"type": "string"},
                "externalId": {"type": "string"},
                "id": {"type": "integer"},
                "number": {"type": "string"},
                "orderAmount": {"$ref": "#/definitions/valueobjects.MoneyAmount"},
                "orderCompletedDateTime": {"type": "string", "format": "date-time"},
                "selectedPaymentOption": {"$ref": "#/definitions/webhook.PaymentOption"},
                "status": {"type": "string"}
            }
        },
        "webhook.PaymentOption": {
            "type": "object",
            "properties": {
                "amount": {"$ref": "#/definitions/valueobjects.MoneyAmount"},
                "amountFee": {"$ref": "#/definitions/valueobjects.MoneyAmount"},
                "amountNet": {"$ref": "#/definitions/valueobjects.MoneyAmount"},
                "exchangeRate": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WalletPay Webhook Receiver",
	Description:      "Receives and verifies WalletPay order webhooks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
