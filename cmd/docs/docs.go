// Package docs holds the OpenAPI document for the HTTP API, built from the
// handler annotations. Rebuild it with
// `swag init -g cmd/adsdash/main.go -o cmd/docs` after changing a handler.
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
		"/account-types": {
			"get": {
				"summary": "List account types",
				"tags": [
					"directory"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResponse-domain_AccountType"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create an account type",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Account type details",
						"name": "account_type",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AccountTypeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.AccountType"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/account-types/{id}": {
			"put": {
				"summary": "Update an account type",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Account type ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Account type details",
						"name": "account_type",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AccountTypeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AccountType"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete an account type",
				"tags": [
					"directory"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Account type ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
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
		"/auth/change-password": {
			"post": {
				"summary": "Change a password",
				"description": "Changes the operator's own password, or another account's when the operator is an admin and the body names an id.",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Passwords",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ChangePasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Weak password or wrong current password",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Not allowed to change that account",
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
		"/auth/check-password": {
			"post": {
				"summary": "Verify the current password",
				"description": "Verifies the operator's current password before a sensitive change.",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Current password",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CheckPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "boolean"
							}
						}
					},
					"400": {
						"description": "Password does not match",
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
		"/auth/forgot-password": {
			"post": {
				"summary": "Send a password reset mail",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Account email",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ForgotPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/auth/login": {
			"post": {
				"summary": "Log in",
				"description": "Authenticates against the backend and returns a session token.",
				"tags": [
					"auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Email and password",
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Wrong credentials",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Account inactive",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"429": {
						"description": "Too many attempts",
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
		"/auth/logout": {
			"post": {
				"summary": "Log out",
				"tags": [
					"auth"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
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
		"/auth/me": {
			"get": {
				"summary": "Current session",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
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
		"/bills": {
			"get": {
				"summary": "List bills",
				"description": "Lists one page of bills. cash_on_hand feeds the reconciliation panel, which compares it with what the page says was received.",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size",
						"name": "per_page",
						"in": "query"
					},
					{
						"type": "string",
						"description": "debt, deposit or completed",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Customer filter",
						"name": "customer_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive start date (YYYY-MM-DD)",
						"name": "from_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive end date (YYYY-MM-DD)",
						"name": "to_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc",
						"name": "sort_order",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cash counted on hand",
						"name": "cash_on_hand",
						"in": "query"
					},
					{
						"type": "string",
						"description": "State token from an earlier response",
						"name": "state",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BillListResponse"
						}
					},
					"400": {
						"description": "Invalid query parameters",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Superseded by a newer request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create a bill",
				"description": "A new bill has no payments, so it starts as debt.",
				"tags": [
					"bills"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Bill details",
						"name": "bill",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BillRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Bill"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/bills/export": {
			"get": {
				"summary": "Export bills to XLSX",
				"tags": [
					"bills"
				],
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "debt, deposit or completed",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Customer filter",
						"name": "customer_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive start date (YYYY-MM-DD)",
						"name": "from_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive end date (YYYY-MM-DD)",
						"name": "to_date",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"502": {
						"description": "Backend unavailable",
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
		"/bills/{id}": {
			"get": {
				"summary": "Get a bill with its payments",
				"description": "Returns a bill with its payments and the settlement derived from them. Also served under /bills/{id}/payments.",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Bill ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BillDetailResponse"
						}
					},
					"404": {
						"description": "Bill not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"summary": "Update a bill",
				"tags": [
					"bills"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Bill ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Bill details",
						"name": "bill",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BillRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Bill"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a bill",
				"tags": [
					"bills"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Bill ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
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
		"/bills/{id}/payments/{payment_id}": {
			"delete": {
				"summary": "Delete a payment",
				"description": "Removes a payment and returns the bill's recomputed settlement.",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Bill ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Payment ID",
						"name": "payment_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BillDetailResponse"
						}
					},
					"404": {
						"description": "Payment not found",
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
		"/budgets": {
			"get": {
				"summary": "List budgets",
				"tags": [
					"budgets"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResponse-domain_Budget"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create a budget",
				"tags": [
					"budgets"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Budget details",
						"name": "budget",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BudgetRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Budget"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/budgets/usage": {
			"get": {
				"summary": "List budget usage",
				"description": "Each budget with the money its contracts already use and what is left.",
				"tags": [
					"budgets"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResponse-dto_BudgetUsageRow"
						}
					},
					"401": {
						"description": "Unauthorized",
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
		"/budgets/{id}": {
			"get": {
				"summary": "Get a budget by ID",
				"tags": [
					"budgets"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Budget"
						}
					},
					"404": {
						"description": "Budget not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "Backend unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"summary": "Update a budget",
				"tags": [
					"budgets"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Budget details",
						"name": "budget",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BudgetRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Budget"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a budget",
				"tags": [
					"budgets"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Budget ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
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
		"/contracts": {
			"get": {
				"summary": "List contracts",
				"description": "Lists one page of contracts with each row's allocation and the totals over that page. A page past the end is served as the last page.",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size",
						"name": "per_page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Alias of per_page",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Customer filter",
						"name": "customer_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Supplier filter",
						"name": "supplier_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Account type filter",
						"name": "account_type_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "legal, illegal or middle-illegal",
						"name": "product_type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive start date (YYYY-MM-DD)",
						"name": "from_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive end date (YYYY-MM-DD)",
						"name": "to_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc",
						"name": "sort_order",
						"in": "query"
					},
					{
						"type": "string",
						"description": "State token from an earlier response",
						"name": "state",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ContractListResponse"
						}
					},
					"400": {
						"description": "Invalid query parameters",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Superseded by a newer request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create a contract",
				"description": "Creates a contract. Zero rates are taken from the budget. 409 with the budget check when the contract would overdraw its budget.",
				"tags": [
					"contracts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Contract details",
						"name": "contract",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ContractRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ContractMutationResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Budget exceeded, with budget_check",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "object"
							}
						}
					},
					"502": {
						"description": "Backend unavailable",
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
		"/contracts/check": {
			"post": {
				"summary": "Check a cost against its budget",
				"description": "Reports how much of a budget a cost would use, without saving anything.",
				"tags": [
					"contracts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Budget, cost and the contract being edited",
						"name": "check",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CheckBudgetRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/allocation.BudgetCheck"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Budget not found",
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
		"/contracts/export": {
			"get": {
				"summary": "Export contracts to XLSX",
				"description": "Takes the same filters as the list and exports every matching contract.",
				"tags": [
					"contracts"
				],
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer filter",
						"name": "customer_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive start date (YYYY-MM-DD)",
						"name": "from_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive end date (YYYY-MM-DD)",
						"name": "to_date",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Invalid query parameters",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "Backend unavailable",
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
		"/contracts/{id}": {
			"put": {
				"summary": "Update a contract",
				"description": "The contract's previous cost is left out of the budget's usage when checking the new one.",
				"tags": [
					"contracts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Contract ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Contract details",
						"name": "contract",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ContractRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ContractMutationResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Budget exceeded, with budget_check",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "object"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a contract",
				"tags": [
					"contracts"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Contract ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
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
		"/customers": {
			"get": {
				"summary": "List customers",
				"description": "Lists every customer. When the backend cannot be read the list is empty and carries a warning.",
				"tags": [
					"directory"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResponse-domain_Customer"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create a customer",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Customer details",
						"name": "customer",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CustomerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Customer"
						}
					},
					"400": {
						"description": "Invalid input or rate outside [0,1]",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "Backend unavailable",
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
		"/customers/{id}": {
			"put": {
				"summary": "Update a customer",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Customer details",
						"name": "customer",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CustomerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Customer"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Customer not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a customer",
				"tags": [
					"directory"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Customer not found",
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
		"/customers/{id}/payments": {
			"get": {
				"summary": "List a customer's payments",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Inclusive start date (YYYY-MM-DD)",
						"name": "from_date",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Inclusive end date (YYYY-MM-DD)",
						"name": "to_date",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PaymentListResponse"
						}
					},
					"400": {
						"description": "Invalid or inverted date range",
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
		"/dashboard/{type}/{value}": {
			"get": {
				"summary": "Dashboard for a period",
				"description": "type is date, week, month or year and value names the period in that granularity, e.g. /dashboard/month/2025-02. A source that cannot be read leaves its figures at zero and adds a warning.",
				"tags": [
					"reporting"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "date, week, month or year",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Period in that granularity",
						"name": "value",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DashboardResponse"
						}
					},
					"400": {
						"description": "Unknown granularity or malformed period",
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
		"/overview/customers/{id}/{period}": {
			"get": {
				"summary": "A customer's month",
				"tags": [
					"reporting"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Month (YYYY-MM) or a date inside it",
						"name": "period",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CustomerOverviewResponse"
						}
					},
					"400": {
						"description": "Malformed period",
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
		"/overview/suppliers/{id}/{period}": {
			"get": {
				"summary": "A supplier's month",
				"tags": [
					"reporting"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Supplier ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Month (YYYY-MM) or a date inside it",
						"name": "period",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SupplierOverviewResponse"
						}
					},
					"400": {
						"description": "Malformed period",
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
		"/payments": {
			"post": {
				"summary": "Record a payment",
				"description": "Records a payment against a bill and returns the bill's recomputed settlement.",
				"tags": [
					"bills"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Payment details",
						"name": "payment",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PaymentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.BillDetailResponse"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/payments/{id}": {
			"put": {
				"summary": "Update a payment",
				"tags": [
					"bills"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Payment ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Payment details",
						"name": "payment",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PaymentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BillDetailResponse"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/suppliers": {
			"get": {
				"summary": "List suppliers",
				"tags": [
					"directory"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResponse-domain_Supplier"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Create a supplier",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Supplier details",
						"name": "supplier",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SupplierRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Supplier"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/suppliers/{id}": {
			"put": {
				"summary": "Update a supplier",
				"tags": [
					"directory"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Supplier ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Supplier details",
						"name": "supplier",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SupplierRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Supplier"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a supplier",
				"tags": [
					"directory"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Supplier ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Admin only",
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
		"/suppliers/{id}/budgets": {
			"get": {
				"summary": "List one supplier's budgets",
				"description": "Pages through one supplier's budgets. Accepts the list filters plus limit as an alias of per_page, or a state token from an earlier response.",
				"tags": [
					"budgets"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Supplier ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size",
						"name": "per_page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Alias of per_page",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Budget status",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Sort field",
						"name": "sort_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "asc or desc",
						"name": "sort_order",
						"in": "query"
					},
					{
						"type": "string",
						"description": "State token from an earlier response",
						"name": "state",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PagedResponse-domain_Budget"
						}
					},
					"400": {
						"description": "Invalid query parameters",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Superseded by a newer request",
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
		"/users": {
			"get": {
				"summary": "List operator accounts",
				"description": "Lists operator accounts, optionally filtered by role. When the backend cannot be read the list is empty and carries a warning.",
				"tags": [
					"users"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "admin or manager",
						"name": "role",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListUsersResponse"
						}
					},
					"403": {
						"description": "Admin only",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"summary": "Register an operator account",
				"description": "Password and role default when omitted and a verification mail is sent afterwards.",
				"tags": [
					"users"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Account details",
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterUserRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.UserResponse"
						}
					},
					"400": {
						"description": "Invalid input or weak password",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Admin only",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Email already registered",
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
		"/users/verify-email": {
			"post": {
				"summary": "Send an email verification mail",
				"tags": [
					"users"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Account email",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SendVerifyEmailRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Invalid input",
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
		"/users/{id}": {
			"put": {
				"summary": "Update an operator account",
				"description": "Changes an account's name, status or role. Admins cannot deactivate or demote themselves.",
				"tags": [
					"users"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateUserRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Admin only",
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
		"allocation.Allocation": {
			"type": "object",
			"properties": {
				"customer_cost": {
					"type": "number"
				},
				"supplier_cost": {
					"type": "number"
				},
				"profit": {
					"type": "number"
				}
			}
		},
		"allocation.BudgetCheck": {
			"type": "object",
			"properties": {
				"budget_id": {
					"type": "string"
				},
				"money": {
					"type": "number"
				},
				"used": {
					"type": "number"
				},
				"candidate": {
					"type": "number"
				},
				"projected": {
					"type": "number"
				},
				"remaining": {
					"type": "number"
				},
				"exceeded": {
					"type": "boolean"
				}
			}
		},
		"allocation.Totals": {
			"type": "object",
			"properties": {
				"total_cost": {
					"type": "number"
				},
				"customer_cost": {
					"type": "number"
				},
				"supplier_cost": {
					"type": "number"
				},
				"profit": {
					"type": "number"
				},
				"customer_paid": {
					"type": "number"
				},
				"invalid": {
					"type": "integer"
				}
			}
		},
		"domain.AccountType": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"domain.Bill": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"customer_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"product": {
					"type": "string"
				},
				"total_money": {
					"type": "number"
				},
				"paid_amount": {
					"type": "number"
				},
				"debt_amount": {
					"type": "number"
				},
				"deposit_amount": {
					"type": "number"
				},
				"status": {
					"type": "string"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"domain.Budget": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"supplier_id": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"account_type_name": {
					"type": "string"
				},
				"money": {
					"type": "number"
				},
				"product_type": {
					"type": "string"
				},
				"supplier_rate": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"status": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				}
			}
		},
		"domain.Contract": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"budget_id": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"supplier_id": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"account_type_name": {
					"type": "string"
				},
				"product": {
					"type": "string"
				},
				"product_type": {
					"type": "string"
				},
				"total_cost": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"supplier_rate": {
					"type": "number"
				},
				"customer_actually_paid": {
					"type": "number"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"domain.Customer": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"zalo": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"product_type": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"account_type_name": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"rate": {
					"type": "number"
				}
			}
		},
		"domain.CustomerOverview": {
			"type": "object",
			"properties": {
				"customer": {
					"$ref": "#/definitions/domain.Customer"
				},
				"period": {
					"type": "string"
				},
				"total_runs": {
					"type": "integer"
				},
				"runs_by_account_type": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"runs_by_product": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"total_money": {
					"type": "number"
				},
				"total_paid": {
					"type": "number"
				},
				"total_debt": {
					"type": "number"
				}
			}
		},
		"domain.GroupSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				},
				"total_money": {
					"type": "number"
				},
				"total_profit": {
					"type": "number"
				}
			}
		},
		"domain.Payment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"bill_id": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"amount": {
					"type": "number"
				},
				"method": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"is_deposit": {
					"type": "integer"
				}
			}
		},
		"domain.Period": {
			"type": "object",
			"properties": {
				"from": {
					"type": "string",
					"format": "date"
				},
				"to": {
					"type": "string",
					"format": "date"
				}
			}
		},
		"domain.Supplier": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"zalo": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"domain.SupplierOverview": {
			"type": "object",
			"properties": {
				"supplier": {
					"$ref": "#/definitions/domain.Supplier"
				},
				"period": {
					"type": "string"
				},
				"total_budget_count": {
					"type": "integer"
				},
				"budget_by_account_type": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"total_payable": {
					"type": "number"
				}
			}
		},
		"dto.AccountTypeRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.BillDetailResponse": {
			"type": "object",
			"properties": {
				"bill": {
					"$ref": "#/definitions/domain.Bill"
				},
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Payment"
					}
				},
				"summary": {
					"$ref": "#/definitions/ledger.Summary"
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.BillListResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Bill"
					}
				},
				"pagination": {
					"$ref": "#/definitions/pagination.PageInfo"
				},
				"state": {
					"type": "string"
				},
				"warning": {
					"type": "string"
				},
				"reconciliation": {
					"$ref": "#/definitions/ledger.Reconciliation"
				}
			}
		},
		"dto.BillRequest": {
			"type": "object",
			"required": [
				"date",
				"customer_id"
			],
			"properties": {
				"date": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"product": {
					"type": "string"
				},
				"total_money": {
					"type": "number"
				},
				"deposit_amount": {
					"type": "number"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.BudgetRequest": {
			"type": "object",
			"required": [
				"supplier_id",
				"account_type_id",
				"product_type",
				"date"
			],
			"properties": {
				"supplier_id": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"money": {
					"type": "number"
				},
				"product_type": {
					"type": "string"
				},
				"supplier_rate": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"status": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"dto.BudgetUsageRow": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"account_type_name": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"budget_money": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"supplier_rate": {
					"type": "number"
				},
				"used_budget": {
					"type": "number"
				},
				"remaining": {
					"type": "number"
				},
				"exhausted": {
					"type": "boolean"
				}
			}
		},
		"dto.ChangePasswordRequest": {
			"type": "object",
			"required": [
				"new_password"
			],
			"properties": {
				"id": {
					"type": "string"
				},
				"current_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			}
		},
		"dto.CheckBudgetRequest": {
			"type": "object",
			"required": [
				"budget_id"
			],
			"properties": {
				"budget_id": {
					"type": "string"
				},
				"contract_id": {
					"type": "string"
				},
				"total_cost": {
					"type": "number"
				}
			}
		},
		"dto.CheckPasswordRequest": {
			"type": "object",
			"required": [
				"password"
			],
			"properties": {
				"password": {
					"type": "string"
				}
			}
		},
		"dto.ContractListResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ContractRow"
					}
				},
				"pagination": {
					"$ref": "#/definitions/pagination.PageInfo"
				},
				"state": {
					"type": "string"
				},
				"warning": {
					"type": "string"
				},
				"totals": {
					"$ref": "#/definitions/allocation.Totals"
				}
			}
		},
		"dto.ContractMutationResponse": {
			"type": "object",
			"properties": {
				"contract": {
					"$ref": "#/definitions/domain.Contract"
				},
				"allocation": {
					"$ref": "#/definitions/allocation.Allocation"
				},
				"budget_check": {
					"$ref": "#/definitions/allocation.BudgetCheck"
				}
			}
		},
		"dto.ContractRequest": {
			"type": "object",
			"required": [
				"date",
				"budget_id",
				"customer_id"
			],
			"properties": {
				"date": {
					"type": "string"
				},
				"budget_id": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"product": {
					"type": "string"
				},
				"product_type": {
					"type": "string"
				},
				"total_cost": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"supplier_rate": {
					"type": "number"
				},
				"customer_actually_paid": {
					"type": "number"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.ContractRow": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"budget_id": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"supplier_id": {
					"type": "string"
				},
				"supplier_name": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"account_type_name": {
					"type": "string"
				},
				"product": {
					"type": "string"
				},
				"product_type": {
					"type": "string"
				},
				"total_cost": {
					"type": "number"
				},
				"customer_rate": {
					"type": "number"
				},
				"supplier_rate": {
					"type": "number"
				},
				"customer_actually_paid": {
					"type": "number"
				},
				"note": {
					"type": "string"
				},
				"customer_cost": {
					"type": "number"
				},
				"supplier_cost": {
					"type": "number"
				},
				"profit": {
					"type": "number"
				},
				"invalid": {
					"type": "boolean"
				}
			}
		},
		"dto.CustomerOverviewResponse": {
			"type": "object",
			"properties": {
				"overview": {
					"$ref": "#/definitions/domain.CustomerOverview"
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.CustomerRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"zalo": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"product_type": {
					"type": "string"
				},
				"account_type_id": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"rate": {
					"type": "number"
				}
			}
		},
		"dto.DashboardResponse": {
			"type": "object",
			"properties": {
				"period": {
					"$ref": "#/definitions/domain.Period"
				},
				"granularity": {
					"type": "string"
				},
				"total_contracts": {
					"type": "integer"
				},
				"total_cost": {
					"type": "number"
				},
				"revenue": {
					"type": "number"
				},
				"profit": {
					"type": "number"
				},
				"received": {
					"type": "number"
				},
				"total_bills": {
					"type": "integer"
				},
				"total_debt": {
					"type": "number"
				},
				"total_budgets": {
					"type": "integer"
				},
				"budget_money": {
					"type": "number"
				},
				"top_account_type": {
					"type": "string"
				},
				"account_types": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"customers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"trend": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.GroupSummary"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ForgotPasswordRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"dto.ListResponse-domain_AccountType": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.AccountType"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ListResponse-domain_Budget": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Budget"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ListResponse-domain_Customer": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Customer"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ListResponse-domain_Supplier": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Supplier"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ListResponse-dto_BudgetUsageRow": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.BudgetUsageRow"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.ListUsersResponse": {
			"type": "object",
			"properties": {
				"users": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.UserResponse"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				}
			}
		},
		"dto.PagedResponse-domain_Budget": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Budget"
					}
				},
				"pagination": {
					"$ref": "#/definitions/pagination.PageInfo"
				},
				"state": {
					"type": "string"
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.PaymentListResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Payment"
					}
				},
				"total": {
					"type": "number"
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.PaymentRequest": {
			"type": "object",
			"required": [
				"bill_id",
				"date"
			],
			"properties": {
				"bill_id": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"method": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"is_deposit": {
					"type": "boolean"
				}
			}
		},
		"dto.RegisterUserRequest": {
			"type": "object",
			"required": [
				"name",
				"email"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"dto.SendVerifyEmailRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"dto.SessionResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.SupplierOverviewResponse": {
			"type": "object",
			"properties": {
				"overview": {
					"$ref": "#/definitions/domain.SupplierOverview"
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"dto.SupplierRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"zalo": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"note": {
					"type": "string"
				}
			}
		},
		"dto.UpdateUserRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"dto.UserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"ledger.Reconciliation": {
			"type": "object",
			"properties": {
				"total_money": {
					"type": "number"
				},
				"total_paid": {
					"type": "number"
				},
				"total_deposit": {
					"type": "number"
				},
				"total_debt": {
					"type": "number"
				},
				"cash_on_hand": {
					"type": "number"
				},
				"difference": {
					"type": "number"
				},
				"balanced": {
					"type": "boolean"
				}
			}
		},
		"ledger.Summary": {
			"type": "object",
			"properties": {
				"total_paid": {
					"type": "number"
				},
				"debt": {
					"type": "number"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"pagination.PageInfo": {
			"type": "object",
			"properties": {
				"current_page": {
					"type": "integer"
				},
				"per_page": {
					"type": "integer"
				},
				"from": {
					"type": "integer"
				},
				"to": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"last_page": {
					"type": "integer"
				},
				"has_next": {
					"type": "boolean"
				},
				"has_prev": {
					"type": "boolean"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the session token from /auth/login.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"security": [
		{
			"BearerAuth": []
		}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ads Resale Dashboard API",
	Description:      "Dashboard service for reselling advertising budgets: budgets, contracts, bills and reporting over the operations backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
