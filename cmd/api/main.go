package main

import (
	_ "salamatlab/docs"
	"salamatlab/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Salamat Lab Intake API
// @version         1.0
// @description     Checkup and home-sampling request intake with a per-user request ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
