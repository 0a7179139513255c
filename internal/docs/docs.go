// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/exchange-rates": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Rate samples",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RecordRatesRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.ExchangeRate"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Record exchange rates",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/users": {
            "get": {
                "parameters": [
                    {
                        "description": "user or admin",
                        "in": "query",
                        "name": "role",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "active, pending or suspended",
                        "in": "query",
                        "name": "status",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Email or name fragment",
                        "in": "query",
                        "name": "q",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page number (default 1)",
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default 20, max 100)",
                        "in": "query",
                        "name": "page_size",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pagination.PageResponse-models_User"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List users",
                "tags": [
                    "admin"
                ]
            }
        },
        "/admin/users/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Suspending a user also drops their cached dashboard",
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.AdminUpdateUserRequest"
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
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a user",
                "tags": [
                    "admin"
                ]
            }
        },
        "/analytics/category-sum": {
            "get": {
                "parameters": [
                    {
                        "description": "YYYY-MM (default current month)",
                        "in": "query",
                        "name": "month",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Start date, inclusive",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "End date, inclusive",
                        "in": "query",
                        "name": "to",
                        "required": false,
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
                                "$ref": "#/definitions/services.CategoryTotal"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Category totals",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/analytics/daily": {
            "get": {
                "parameters": [
                    {
                        "description": "YYYY-MM (default current month)",
                        "in": "query",
                        "name": "month",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Start date, inclusive",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "End date, inclusive",
                        "in": "query",
                        "name": "to",
                        "required": false,
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
                                "$ref": "#/definitions/services.DailyTotal"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Daily totals",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/analytics/subscriptions-overview": {
            "get": {
                "description": "Active and paused counts plus the normalized monthly cost per currency",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.SubscriptionsOverview"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Subscriptions overview",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Authenticate a user and get a token pair",
                "parameters": [
                    {
                        "description": "User login credentials",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "User authenticated and tokens generated",
                        "schema": {
                            "$ref": "#/definitions/handlers.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "423": {
                        "description": "Account locked",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Login user",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Revoke the current refresh token and discard the in-memory dashboard session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Logged out",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Logout",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Exchange a valid refresh token for a new access/refresh pair. The old refresh token is revoked.",
                "parameters": [
                    {
                        "description": "Refresh token",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RefreshRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "New tokens",
                        "schema": {
                            "$ref": "#/definitions/handlers.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or revoked token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Refresh tokens",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Register a new user with email and password. Default categories are created.",
                "parameters": [
                    {
                        "description": "User registration data",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RegisterRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "User registered and tokens generated",
                        "schema": {
                            "$ref": "#/definitions/handlers.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Email already registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Register a new user",
                "tags": [
                    "auth"
                ]
            }
        },
        "/categories": {
            "get": {
                "description": "Paginated categories ordered by name",
                "parameters": [
                    {
                        "description": "income, expense or transfer",
                        "in": "query",
                        "name": "kind",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page number (default 1)",
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default 20, max 100)",
                        "in": "query",
                        "name": "page_size",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pagination.PageResponse-models_Category"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get user categories",
                "tags": [
                    "categories"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Create a new transaction category",
                "parameters": [
                    {
                        "description": "Category details",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateCategoryRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Category created",
                        "schema": {
                            "$ref": "#/definitions/models.Category"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Duplicate name",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a category",
                "tags": [
                    "categories"
                ]
            }
        },
        "/categories/{id}": {
            "delete": {
                "description": "Subscriptions still referencing the category block the delete",
                "parameters": [
                    {
                        "description": "Category ID",
                        "in": "path",
                        "name": "id",
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
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Category in use",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a category",
                "tags": [
                    "categories"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Category ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/models.Category"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get category by ID",
                "tags": [
                    "categories"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Category ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateCategoryRequest"
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
                            "$ref": "#/definitions/models.Category"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Duplicate name",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a category",
                "tags": [
                    "categories"
                ]
            }
        },
        "/dashboard": {
            "get": {
                "description": "Snapshot of the caller's dashboard: collections, selected month and currency, and derived summaries",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.View"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get dashboard",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/chat": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.ChatMessage"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Chat history",
                "tags": [
                    "dashboard"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Appends the prompt and a spending digest for the selected month",
                "parameters": [
                    {
                        "description": "Prompt",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.ChatRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.ChatMessage"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Empty prompt",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Send chat prompt",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/convert": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Amount and its currency",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.ConvertRequest"
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
                            "$ref": "#/definitions/finance.Conversion"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Convert amount",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/currency": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Currency code",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SetCurrencyRequest"
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
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Select currency",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/forecast": {
            "get": {
                "description": "Every subscription charge from the selected month through the given number of further months, in the selected currency",
                "parameters": [
                    {
                        "description": "Months beyond the selected one (default 2, max 24)",
                        "in": "query",
                        "name": "months",
                        "required": false,
                        "type": "integer"
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
                                "$ref": "#/definitions/finance.ForecastItem"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Subscription forecast",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/month": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Month in YYYY-MM format",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SetMonthRequest"
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
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Select month",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/presets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/refdata.Preset"
                            },
                            "type": "array"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List presets",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/presets/{id}/apply": {
            "post": {
                "description": "Create a transaction dated now from the preset template",
                "parameters": [
                    {
                        "description": "Preset ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Preset not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Apply preset",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/reload": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reload dashboard",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/dashboard/summary": {
            "get": {
                "description": "Daily and category totals for the selected month in the selected currency",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get dashboard summary",
                "tags": [
                    "dashboard"
                ]
            }
        },
        "/exchange-rates": {
            "get": {
                "description": "Paginated samples, newest first, optionally for one pair",
                "parameters": [
                    {
                        "description": "Base currency",
                        "in": "query",
                        "name": "base",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Quote currency",
                        "in": "query",
                        "name": "quote",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page number (default 1)",
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default 20, max 100)",
                        "in": "query",
                        "name": "page_size",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pagination.PageResponse-models_ExchangeRate"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List exchange rates",
                "tags": [
                    "exchange-rates"
                ]
            }
        },
        "/exchange-rates/latest": {
            "get": {
                "parameters": [
                    {
                        "description": "Base currency",
                        "in": "query",
                        "name": "base",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Quote currency",
                        "in": "query",
                        "name": "quote",
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
                            "$ref": "#/definitions/models.ExchangeRate"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No rate for the pair",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Latest exchange rate",
                "tags": [
                    "exchange-rates"
                ]
            }
        },
        "/pipeline/exchange-rates": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Machine endpoint authenticated with X-API-Key",
                "parameters": [
                    {
                        "description": "Rate samples",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RecordRatesRequest"
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
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid API key",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Pipeline not configured",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "summary": "Ingest exchange rates",
                "tags": [
                    "pipeline"
                ]
            }
        },
        "/profile": {
            "get": {
                "description": "Get the authenticated user's profile information",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "User profile",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get user profile",
                "tags": [
                    "user"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Change the full name or the base currency. A new base currency applies to the next dashboard session.",
                "parameters": [
                    {
                        "description": "Profile fields",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateProfileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Updated profile",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update user profile",
                "tags": [
                    "user"
                ]
            }
        },
        "/subscriptions": {
            "get": {
                "description": "Paginated subscriptions ordered by next payment date",
                "parameters": [
                    {
                        "description": "Page number (default 1)",
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default 20, max 100)",
                        "in": "query",
                        "name": "page_size",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "next_payment_date, amount or name; prefix - for descending",
                        "in": "query",
                        "name": "sort",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "active or paused",
                        "in": "query",
                        "name": "status",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "weekly, monthly, quarterly or yearly",
                        "in": "query",
                        "name": "cadence",
                        "required": false,
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
                            "$ref": "#/definitions/pagination.PageResponse-models_Subscription"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List subscriptions",
                "tags": [
                    "subscriptions"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Subscription details",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateSubscriptionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Subscription created",
                        "schema": {
                            "$ref": "#/definitions/models.Subscription"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a subscription",
                "tags": [
                    "subscriptions"
                ]
            }
        },
        "/subscriptions/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Subscription ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Subscription not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a subscription",
                "tags": [
                    "subscriptions"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Subscription ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/models.Subscription"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Subscription not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a subscription",
                "tags": [
                    "subscriptions"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Subscription ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateSubscriptionRequest"
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
                            "$ref": "#/definitions/models.Subscription"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Subscription not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a subscription",
                "tags": [
                    "subscriptions"
                ]
            }
        },
        "/subscriptions/{id}/forecast": {
            "get": {
                "description": "The next count charge dates starting at the anchor date",
                "parameters": [
                    {
                        "description": "Subscription ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Number of dates (default 6, max 60)",
                        "in": "query",
                        "name": "count",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": {},
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Subscription not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Subscription occurrences",
                "tags": [
                    "subscriptions"
                ]
            }
        },
        "/subscriptions/{id}/toggle": {
            "post": {
                "parameters": [
                    {
                        "description": "Subscription ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/models.Subscription"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Subscription not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Toggle subscription status",
                "tags": [
                    "subscriptions"
                ]
            }
        },
        "/transactions": {
            "get": {
                "description": "Paginated transactions, newest first, with optional filters",
                "parameters": [
                    {
                        "description": "Page number (default 1)",
                        "in": "query",
                        "name": "page",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items per page (default 20, max 100)",
                        "in": "query",
                        "name": "page_size",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "date, amount, merchant or created; prefix - for descending (default -date)",
                        "in": "query",
                        "name": "sort",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by start date (RFC3339 or YYYY-MM-DD)",
                        "in": "query",
                        "name": "from_date",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by end date (RFC3339 or YYYY-MM-DD)",
                        "in": "query",
                        "name": "to_date",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "income, expense or transfer",
                        "in": "query",
                        "name": "type",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by category ID",
                        "in": "query",
                        "name": "category_id",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by merchant",
                        "in": "query",
                        "name": "merchant",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by currency",
                        "in": "query",
                        "name": "currency",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Paginated transactions",
                        "schema": {
                            "$ref": "#/definitions/pagination.PageResponse-models_Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List transactions",
                "tags": [
                    "transactions"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Record an income, expense or transfer. The date defaults to now.",
                "parameters": [
                    {
                        "description": "Transaction details",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateTransactionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Transaction created",
                        "schema": {
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a transaction",
                "tags": [
                    "transactions"
                ]
            }
        },
        "/transactions/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a transaction",
                "tags": [
                    "transactions"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "in": "path",
                        "name": "id",
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
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a transaction",
                "tags": [
                    "transactions"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateTransactionRequest"
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
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a transaction",
                "tags": [
                    "transactions"
                ]
            }
        }
    },
    "definitions": {
        "dashboard.Summary": {
            "properties": {
                "approximate": {
                    "type": "boolean"
                },
                "category_summaries": {
                    "items": {
                        "$ref": "#/definitions/finance.CategorySummary"
                    },
                    "type": "array"
                },
                "daily_summaries": {
                    "items": {
                        "$ref": "#/definitions/finance.DailySummary"
                    },
                    "type": "array"
                },
                "selected_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "selected_month": {
                    "example": "2024-03",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dashboard.View": {
            "properties": {
                "approximate": {
                    "type": "boolean"
                },
                "categories": {
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    },
                    "type": "array"
                },
                "category_summaries": {
                    "items": {
                        "$ref": "#/definitions/finance.CategorySummary"
                    },
                    "type": "array"
                },
                "chat_history": {
                    "items": {
                        "$ref": "#/definitions/models.ChatMessage"
                    },
                    "type": "array"
                },
                "daily_summaries": {
                    "items": {
                        "$ref": "#/definitions/finance.DailySummary"
                    },
                    "type": "array"
                },
                "exchange_rates": {
                    "items": {
                        "$ref": "#/definitions/models.ExchangeRate"
                    },
                    "type": "array"
                },
                "loaded_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "presets": {
                    "items": {
                        "$ref": "#/definitions/refdata.Preset"
                    },
                    "type": "array"
                },
                "selected_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "selected_month": {
                    "example": "2024-03",
                    "type": "string"
                },
                "subscriptions": {
                    "items": {
                        "$ref": "#/definitions/models.Subscription"
                    },
                    "type": "array"
                },
                "transactions": {
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    },
                    "type": "array"
                },
                "user_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "finance.CategorySummary": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "total": {
                    "$ref": "#/definitions/models.Money"
                }
            },
            "type": "object"
        },
        "finance.Conversion": {
            "properties": {
                "money": {
                    "$ref": "#/definitions/models.Money"
                },
                "rate": {
                    "type": "number"
                },
                "source": {
                    "enum": [
                        "direct",
                        "fallback",
                        "identity",
                        "inverse"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "finance.DailySummary": {
            "properties": {
                "date": {
                    "format": "date-time",
                    "type": "string"
                },
                "total": {
                    "$ref": "#/definitions/models.Money"
                }
            },
            "type": "object"
        },
        "finance.ForecastItem": {
            "properties": {
                "amount": {
                    "$ref": "#/definitions/models.Money"
                },
                "approximate": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "scheduled_date": {
                    "format": "date-time",
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "paused",
                        "scheduled",
                        "skipped"
                    ],
                    "type": "string"
                },
                "subscription_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.AdminUpdateUserRequest": {
            "properties": {
                "full_name": {
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "admin",
                        "user"
                    ],
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "active",
                        "pending",
                        "suspended"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.AuthResponse": {
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "refresh_token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            },
            "type": "object"
        },
        "handlers.ChatRequest": {
            "properties": {
                "prompt": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.ConvertRequest": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.CreateCategoryRequest": {
            "properties": {
                "color": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "kind": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.CreateSubscriptionRequest": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "cadence": {
                    "enum": [
                        "monthly",
                        "quarterly",
                        "weekly",
                        "yearly"
                    ],
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "next_payment_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "reminder_days_before": {
                    "type": "integer"
                },
                "status": {
                    "enum": [
                        "active",
                        "paused"
                    ],
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handlers.CreateTransactionRequest": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "type": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.ErrorDetail": {
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.ErrorResponse": {
            "properties": {
                "error": {
                    "$ref": "#/definitions/handlers.ErrorDetail"
                }
            },
            "type": "object"
        },
        "handlers.LoginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.RateEntry": {
            "properties": {
                "base_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "quote_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "rate": {
                    "type": "number"
                },
                "source": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.RecordRatesRequest": {
            "properties": {
                "rates": {
                    "items": {
                        "$ref": "#/definitions/handlers.RateEntry"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handlers.RefreshRequest": {
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.RegisterRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.SetCurrencyRequest": {
            "properties": {
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.SetMonthRequest": {
            "properties": {
                "month": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.UpdateCategoryRequest": {
            "properties": {
                "color": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "kind": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.UpdateProfileRequest": {
            "properties": {
                "base_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.UpdateSubscriptionRequest": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "cadence": {
                    "enum": [
                        "monthly",
                        "quarterly",
                        "weekly",
                        "yearly"
                    ],
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "next_payment_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "reminder_days_before": {
                    "type": "integer"
                },
                "status": {
                    "enum": [
                        "active",
                        "paused"
                    ],
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handlers.UpdateTransactionRequest": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category_id": {
                    "type": "string"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "type": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Category": {
            "properties": {
                "color": {
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "kind": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.ChatMessage": {
            "properties": {
                "content": {
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "assistant",
                        "user"
                    ],
                    "type": "string"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.ExchangeRate": {
            "properties": {
                "base": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "date": {
                    "format": "date-time",
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "quote": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "rate": {
                    "type": "number"
                },
                "source": {
                    "type": "string"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Money": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Subscription": {
            "properties": {
                "amount": {
                    "$ref": "#/definitions/models.Money"
                },
                "cadence": {
                    "enum": [
                        "monthly",
                        "quarterly",
                        "weekly",
                        "yearly"
                    ],
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "next_payment_date": {
                    "format": "date-time",
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "reminder_days_before": {
                    "type": "integer"
                },
                "status": {
                    "enum": [
                        "active",
                        "paused"
                    ],
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Transaction": {
            "properties": {
                "amount": {
                    "$ref": "#/definitions/models.Money"
                },
                "category": {
                    "type": "string"
                },
                "category_id": {
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "date": {
                    "format": "date-time",
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "type": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.User": {
            "properties": {
                "base_currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "created_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "last_login_at": {
                    "format": "date-time",
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "admin",
                        "user"
                    ],
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "active",
                        "pending",
                        "suspended"
                    ],
                    "type": "string"
                },
                "updated_at": {
                    "format": "date-time",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "pagination.PageResponse-models_Category": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    },
                    "type": "array"
                },
                "filters": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "sort": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "pagination.PageResponse-models_ExchangeRate": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/models.ExchangeRate"
                    },
                    "type": "array"
                },
                "filters": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "sort": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "pagination.PageResponse-models_Subscription": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/models.Subscription"
                    },
                    "type": "array"
                },
                "filters": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "sort": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "pagination.PageResponse-models_Transaction": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    },
                    "type": "array"
                },
                "filters": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "sort": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "pagination.PageResponse-models_User": {
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/models.User"
                    },
                    "type": "array"
                },
                "filters": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "sort": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "refdata.Preset": {
            "properties": {
                "amount": {
                    "$ref": "#/definitions/models.Money"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "merchant": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "type": {
                    "enum": [
                        "expense",
                        "income",
                        "transfer"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "services.CategoryTotal": {
            "properties": {
                "category": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "total": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "services.DailyTotal": {
            "properties": {
                "count": {
                    "type": "integer"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "expense": {
                    "type": "number"
                },
                "income": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "services.SubscriptionOverviewItem": {
            "properties": {
                "amount": {
                    "type": "number"
                },
                "cadence": {
                    "enum": [
                        "monthly",
                        "quarterly",
                        "weekly",
                        "yearly"
                    ],
                    "type": "string"
                },
                "currency": {
                    "enum": [
                        "CNY",
                        "EUR",
                        "GBP",
                        "RUB",
                        "USD"
                    ],
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "next_payment_date": {
                    "format": "date-time",
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "active",
                        "paused"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "services.SubscriptionsOverview": {
            "properties": {
                "active": {
                    "type": "integer"
                },
                "items": {
                    "items": {
                        "$ref": "#/definitions/services.SubscriptionOverviewItem"
                    },
                    "type": "array"
                },
                "monthly_cost": {
                    "additionalProperties": {
                        "type": "number"
                    },
                    "type": "object"
                },
                "paused": {
                    "type": "integer"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Shared key for the rate ingestion pipeline.",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        },
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Minify API",
	Description:      "Minify tracks transactions and subscriptions, aggregates monthly spending in a chosen currency and forecasts upcoming charges.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
