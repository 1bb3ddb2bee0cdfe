package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("SECRET") == "" {
		log.Println("WARNING: SECRET not set. Token signing will fail.")
	}
}
