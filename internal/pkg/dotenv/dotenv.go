package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. The -port flag, when given,
// takes precedence over the PORT variable from the file.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("read .env: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
	flag.Parse()

	if portFlag == "" {
		return nil
	}
	if err := os.Setenv("PORT", portFlag); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}
