package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds the key/value pairs read from the .env file.
var Env map[string]string

// GetEnv resolves a config key. The .env file wins over the process
// environment so a checked-in file stays authoritative in dev, while
// containerized deployments can run without one.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the first .env file it finds. The relative
// candidates cover running the server from the repo root and running
// the migrate tool from cmd/migrate.
func SetupEnvFile() {
	candidates := []string{
		".env",
		"../../.env",
		"../../../.env",
	}

	for _, path := range candidates {
		if parsed, err := godotenv.Read(path); err == nil {
			Env = parsed
			return
		}
	}

	panic("No .env file found in any of the expected locations")
}

// IsDev reports whether the app runs in development mode. Controls
// things like the Secure flag on the CSRF cookie.
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
