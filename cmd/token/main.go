// Command token issues an API token for the routes protected by AUTH_REQUIRED.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"trading_insights/internal/app/config"
	jwtmw "trading_insights/internal/platform/jwt"
)

func main() {
	subject := flag.String("subject", "frontend", "client name written to the sub claim")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtmw.NewGenerator(cfg.JWTSecret, *ttl).GenerateToken(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
