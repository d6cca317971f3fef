package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Blob     BlobConfig     `yaml:"blob"`
	Auth     AuthConfig     `yaml:"auth"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Maps     MapsConfig     `yaml:"maps"`
	Events   EventsConfig   `yaml:"events"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverS3       = "s3"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"20971520"`
}

// StoreConfig selects the event/user store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MongoConfig holds MongoDB connection settings. Change streams need a replica set.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"eventorias"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// BlobConfig holds blob storage settings.
type BlobConfig struct {
	Driver        string `yaml:"driver"          env:"BLOB_DRIVER"          env-default:"memory"`
	Bucket        string `yaml:"bucket"          env:"BLOB_BUCKET"          env-default:"eventorias"`
	Region        string `yaml:"region"          env:"BLOB_REGION"          env-default:"eu-west-3"`
	Endpoint      string `yaml:"endpoint"        env:"BLOB_ENDPOINT"`
	PublicBaseURL string `yaml:"public_base_url" env:"BLOB_PUBLIC_BASE_URL"`
	PathStyle     bool   `yaml:"path_style"      env:"BLOB_PATH_STYLE"      env-default:"false"`
	// PublicRead uploads objects with the public-read canned ACL. Leave it
	// off when the bucket grants reads through a bucket policy or when
	// object ownership is enforced, since S3 then rejects ACL headers.
	PublicRead bool `yaml:"public_read" env:"BLOB_PUBLIC_READ" env-default:"false"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"eventorias"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	GoogleClientID   string        `yaml:"google_client_id"   env:"AUTH_GOOGLE_CLIENT_ID"`
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c AuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

// GeocoderConfig holds Nominatim settings.
type GeocoderConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"GEOCODER_BASE_URL"        env-default:"https://nominatim.openstreetmap.org"`
	UserAgent      string        `yaml:"user_agent"      env:"GEOCODER_USER_AGENT"      env-default:"EventoriasApp/1.0 (contact@eventorias.com)"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"GEOCODER_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"GEOCODER_READ_TIMEOUT"    env-default:"5s"`
}

// MapsConfig holds static map rendering settings.
type MapsConfig struct {
	BaseURL string `yaml:"base_url" env:"MAPS_BASE_URL" env-default:"https://maps.googleapis.com/maps/api"`
	APIKey  string `yaml:"api_key"  env:"MAPS_API_KEY"`
	Zoom    int    `yaml:"zoom"     env:"MAPS_ZOOM"     env-default:"15"`
	Size    string `yaml:"size"     env:"MAPS_SIZE"     env-default:"400x400"`
}

// EventsConfig tunes the event synchronization service.
type EventsConfig struct {
	WatchBuffer  int           `yaml:"watch_buffer"  env:"EVENTS_WATCH_BUFFER"  env-default:"16"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"EVENTS_WRITE_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
