package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the configuration and print it with secrets hidden",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		r := cfg.Redacted()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "GO_ENV=%s\n", r.GoEnv)
		fmt.Fprintf(out, "HTTP_PORT=%d\n", r.HTTPPort)
		fmt.Fprintf(out, "DATABASE_URL=%s\n", r.DatabaseURL)
		fmt.Fprintf(out, "DB_MAX_OPEN_CONNS=%d\n", r.DBMaxOpenConns)
		fmt.Fprintf(out, "DB_MAX_IDLE_CONNS=%d\n", r.DBMaxIdleConns)
		fmt.Fprintf(out, "JWT_SECRET=%s\n", r.JWTSecret)
		fmt.Fprintf(out, "JWT_EXPIRY=%s\n", r.JWTExpiry)
		fmt.Fprintf(out, "LOGIN_RATE_LIMIT=%g\n", r.LoginRateLimit)
		fmt.Fprintf(out, "LOGIN_RATE_BURST=%d\n", r.LoginRateBurst)
		fmt.Fprintf(out, "REDIS_URL=%s\n", r.RedisURL)
		fmt.Fprintf(out, "REDIS_PASSWORD=%s\n", r.RedisPassword)
		fmt.Fprintf(out, "PAGE_SIZE=%d\n", r.PageSize)
		fmt.Fprintf(out, "REQUEST_TIMEOUT=%s\n", r.RequestTimeout)
		fmt.Fprintf(out, "CORS_ORIGINS=%s\n", strings.Join(r.CORSOrigins, ","))
		fmt.Fprintf(out, "LOG_LEVEL=%s\n", r.LogLevel)
		fmt.Fprintf(out, "LOG_FORMAT=%s\n", r.LogFormat)
		return nil
	},
}
