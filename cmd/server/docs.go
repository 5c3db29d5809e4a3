package main

// @title Retail Management API
// @version 1.0
// @description Retail management backend for clients, employees, products, purchases and sales with observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name Clients
// @tag.description Client management endpoints

// @tag.name Employees
// @tag.description Employee management endpoints

// @tag.name Products
// @tag.description Product and inventory endpoints

// @tag.name Purchases
// @tag.description Purchase management endpoints

// @tag.name Sales
// @tag.description Sale management endpoints

// @tag.name Health
// @tag.description Health check endpoints
