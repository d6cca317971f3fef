package config

import (
	"fmt"
	"regexp"
)

var mapSizeRe = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for store driver %q", DriverPostgres)
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required for store driver %q", DriverMongo)
		}
	default:
		return fmt.Errorf("store.driver must be one of memory, postgres, mongo (got %q)", c.Store.Driver)
	}

	switch c.Blob.Driver {
	case DriverMemory:
	case DriverS3:
		if c.Blob.Bucket == "" {
			return fmt.Errorf("blob.bucket is required for blob driver %q", DriverS3)
		}
	default:
		return fmt.Errorf("blob.driver must be one of memory, s3 (got %q)", c.Blob.Driver)
	}

	if c.Geocoder.BaseURL == "" {
		return fmt.Errorf("geocoder.base_url is required")
	}
	if c.Geocoder.UserAgent == "" {
		return fmt.Errorf("geocoder.user_agent is required")
	}
	if c.Geocoder.ConnectTimeout <= 0 || c.Geocoder.ReadTimeout <= 0 {
		return fmt.Errorf("geocoder timeouts must be > 0")
	}

	if c.Maps.Zoom < 0 || c.Maps.Zoom > 21 {
		return fmt.Errorf("maps.zoom must be in [0, 21] (got %d)", c.Maps.Zoom)
	}
	if !mapSizeRe.MatchString(c.Maps.Size) {
		return fmt.Errorf("maps.size must look like 400x400 (got %q)", c.Maps.Size)
	}

	if c.Events.WatchBuffer <= 0 {
		return fmt.Errorf("events.watch_buffer must be > 0 (got %d)", c.Events.WatchBuffer)
	}
	if c.Events.WriteTimeout <= 0 {
		return fmt.Errorf("events.write_timeout must be > 0")
	}

	return nil
}
