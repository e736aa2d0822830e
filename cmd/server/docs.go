package main

// @title Inventory Management API
// @version 1.0
// @description Stock ledger, point-of-sale and purchasing API for small retail businesses
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/aungmyo/ims-backend
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/aungmyo/ims-backend/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Product and category management endpoints

// @tag.name Ledger
// @tag.description Stock movement endpoints

// @tag.name Sales
// @tag.description Sale and invoice endpoints

// @tag.name Purchasing
// @tag.description Supplier and purchase order endpoints

// @tag.name Reports
// @tag.description Reporting endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
