package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// RMA record source selectors.
const (
	// SourceMongo reads RMA records straight from the Mongo collection.
	SourceMongo = "mongo"
	// SourceAPI reads RMA records through the legacy CRUD HTTP API.
	SourceAPI = "api"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// SlaTargetDays is the delivery target used to flag SLA breaches.
	// 0 disables SLA annotation entirely.
	SlaTargetDays int `mapstructure:"SLA_TARGET_DAYS" default:"7"`

	// ActiveCacheTTLSeconds is the TTL of the cached active-shipments
	// aggregation. 0 disables the cache decorator.
	ActiveCacheTTLSeconds int `mapstructure:"ACTIVE_CACHE_TTL_SECONDS" default:"30"`

	// RedisURL is the cache connection string. Only consulted when the
	// aggregation cache is enabled.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379"`

	// RmaSource selects where RMA records are read from: "mongo" or "api".
	RmaSource string `mapstructure:"RMA_SOURCE" default:"mongo"`

	// Mongo holds the Mongo connection details.
	Mongo MongoConfig `mapstructure:",squash"`

	// RmaAPI holds the legacy CRUD API connection details.
	RmaAPI RmaAPIConfig `mapstructure:",squash"`
}

// MongoConfig holds the Mongo connection details for the RMA collection.
type MongoConfig struct {
	// URI is the Mongo connection string.
	URI string `mapstructure:"MONGO_URI" default:"mongodb://localhost:27017"`
	// Database is the database holding the rmas collection.
	Database string `mapstructure:"MONGO_DB" default:"rma"`
}

// RmaAPIConfig holds the credentials for the legacy CRUD API.
type RmaAPIConfig struct {
	// URL is the base URL of the legacy API.
	URL string `mapstructure:"RMA_API_URL"`
	// APIKey is the basic-auth username.
	APIKey string `mapstructure:"RMA_API_KEY"`
	// APISecret is the basic-auth password.
	APISecret string `mapstructure:"RMA_API_SECRET"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validateSource(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateSource enforces the conditional requirements of the record source:
// the api source needs the legacy API coordinates, and the source value itself
// must be one of the known selectors.
func validateSource(config *AppConfig) error {
	switch config.RmaSource {
	case SourceMongo:
		if config.Mongo.URI == "" {
			return errors.New("missing required configuration: MONGO_URI")
		}
	case SourceAPI:
		if config.RmaAPI.URL == "" {
			return errors.New("missing required configuration: RMA_API_URL")
		}
		if config.RmaAPI.APIKey == "" || config.RmaAPI.APISecret == "" {
			return errors.New("missing required configuration: RMA_API_KEY / RMA_API_SECRET")
		}
	default:
		return fmt.Errorf("invalid RMA_SOURCE: %q (expected %q or %q)", config.RmaSource, SourceMongo, SourceAPI)
	}
	return nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
