// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with github.com/caarlos0/env tags. The
// default .env file is read with github.com/joho/godotenv on first use, and
// each parsed config is cached per type and prefix:
//
//	var cfg errmsg.Config
//	if err := config.LoadPrefixed(&cfg, "MESSAGES_"); err != nil {
//	    return err
//	}
//
// Parse failures wrap ErrParsingConfig. Reset clears the cache between tests.
package config
