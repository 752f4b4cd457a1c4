package main

import (
	"rentpay/config"
	"rentpay/di"
	"rentpay/shared/logger"
)

// @title rentpay API
// @version 1.0
// @description Booking, payment confirmation and escrow service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	http := di.InitializeService()
	http.Serve()
}
