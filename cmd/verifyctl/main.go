// Command verifyctl exercises the VerifyKit API from the command line.
//
// Credentials are read from the environment (or a .env file):
//
//	VERIFYKIT_API_KEY=... VERIFYKIT_DOMAIN=example.com \
//	    verifyctl -email user@example.com
//
// Passing more than one kind of input runs the combined verification:
//
//	verifyctl -email user@example.com -phone +12025550123
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	verifykit "github.com/verifykit/client-go"
)

type config struct {
	APIKey   string `envconfig:"VERIFYKIT_API_KEY" required:"true"`
	Domain   string `envconfig:"VERIFYKIT_DOMAIN" required:"true"`
	BaseURL  string `envconfig:"VERIFYKIT_BASE_URL"`
	LogLevel string `envconfig:"VERIFYKIT_LOG_LEVEL" default:"info"`
}

func main() {
	email := flag.String("email", "", "email address to verify")
	phone := flag.String("phone", "", "phone number to verify")
	address1 := flag.String("address1", "", "street address line 1")
	address2 := flag.String("address2", "", "street address line 2")
	city := flag.String("city", "", "city")
	state := flag.String("state", "", "state or region")
	zip := flag.String("zip", "", "postal code")
	flag.Parse()

	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("verifykit", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger().Level(level)

	opts := []verifykit.Option{verifykit.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, verifykit.WithBaseURL(cfg.BaseURL))
	}

	client, err := verifykit.New(cfg.APIKey, cfg.Domain, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("create client")
	}

	address := verifykit.Params{}
	for key, value := range map[string]string{
		"address1": *address1,
		"address2": *address2,
		"city":     *city,
		"state":    *state,
		"zip":      *zip,
	} {
		if value != "" {
			address[key] = value
		}
	}

	ctx := context.Background()

	var resp verifykit.Response
	kinds := 0
	for _, set := range []bool{*email != "", *phone != "", len(address) > 0} {
		if set {
			kinds++
		}
	}

	switch {
	case kinds == 0:
		flag.Usage()
		os.Exit(2)
	case kinds > 1:
		params := verifykit.Params{}
		if *email != "" {
			params["email"] = *email
		}
		if *phone != "" {
			params["phone"] = *phone
		}
		for key, value := range address {
			params[key] = value
		}
		logger.Info().Msg("running combined verification")
		resp = client.VerifyCombined(ctx, params)
	case *email != "":
		logger.Info().Str("email", *email).Msg("verifying email")
		resp = client.VerifyEmail(ctx, *email, nil)
	case *phone != "":
		logger.Info().Str("phone", *phone).Msg("verifying phone")
		resp = client.VerifyPhone(ctx, *phone, nil)
	default:
		logger.Info().Msg("verifying address")
		resp = client.VerifyAddress(ctx, address)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("encode response")
	}
	fmt.Println(string(out))

	if resp.IsError() {
		os.Exit(1)
	}
}
