package main

// @title Ads Resale Dashboard API
// @version 1.0
// @description Dashboard service for reselling advertising budgets: budgets, contracts, bills and reporting over the operations backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token from /auth/login.

// @security BearerAuth
func main() {
	Execute()
}
