package main

import (
	"os"

	"github.com/SscSPs/visa_portal_backend/cmd/visa_portal/commands"
)

// @title Visa Portal Backend API
// @version 1.0
// @description Client portal and admin back-office API: payments, payment plans, and currency conversion.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
