// Package config loads server configuration from an optional YAML file and AUTHKEEPER_* environment variables.
package config

import (
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. AUTHKEEPER_POSTGRES_DSN.
const EnvPrefix = "AUTHKEEPER_"

// Config is the complete server configuration.
type Config struct {
	Server   Server   `yaml:"server" mapstructure:"server"`
	Postgres Postgres `yaml:"postgres" mapstructure:"postgres"`
	Auth     Auth     `yaml:"auth" mapstructure:"auth"`
	Limiter  Limiter  `yaml:"limiter" mapstructure:"limiter"`
	Backend  Backend  `yaml:"backend" mapstructure:"backend"`
	Log      Log      `yaml:"log" mapstructure:"log"`
}

// Server configures the gRPC listener.
type Server struct {
	Addr    string `yaml:"addr" mapstructure:"addr" validate:"required"`
	TLSCert string `yaml:"tlsCert" mapstructure:"tlsCert" validate:"required_with=TLSKey"`
	TLSKey  string `yaml:"tlsKey" mapstructure:"tlsKey" validate:"required_with=TLSCert"`
	// Dev enables server reflection.
	Dev bool `yaml:"dev" mapstructure:"dev"`
}

// Postgres configures the database connection.
type Postgres struct {
	DSN string `yaml:"dsn" mapstructure:"dsn" validate:"required"`
}

// Auth configures password hashing and session tokens.
type Auth struct {
	SigningSecret string        `yaml:"signingSecret" mapstructure:"signingSecret" validate:"required,min=16"`
	TokenTTL      time.Duration `yaml:"tokenTTL" mapstructure:"tokenTTL" validate:"required"`
	BcryptCost    int           `yaml:"bcryptCost" mapstructure:"bcryptCost" validate:"min=4,max=31"`
}

// Limiter configures login lockout.
type Limiter struct {
	Window      time.Duration `yaml:"window" mapstructure:"window" validate:"required"`
	MaxFailures int           `yaml:"maxFailures" mapstructure:"maxFailures" validate:"min=1"`
	BlockFor    time.Duration `yaml:"blockFor" mapstructure:"blockFor" validate:"required"`
}

// Backend configures the authorization-store service. An empty APIKey disables it.
type Backend struct {
	APIKey string `yaml:"apiKey" mapstructure:"apiKey" validate:"omitempty,min=16"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

var defaults = map[string]any{
	"server.addr":         ":8443",
	"server.tlsCert":      "",
	"server.tlsKey":       "",
	"server.dev":          false,
	"postgres.dsn":        "",
	"auth.signingSecret":  "",
	"auth.tokenTTL":       "1h",
	"auth.bcryptCost":     10,
	"limiter.window":      "15m",
	"limiter.maxFailures": 5,
	"limiter.blockFor":    "15m",
	"backend.apiKey":      "",
	"log.level":           "info",
	"log.development":     false,
}

// Load reads defaults, then path (if non-empty), then the process environment, and validates the result.
func Load(path string) (*Config, error) {
	return load(path, os.Environ)
}

func load(path string, environ func() []string) (*Config, error) {
	k := koanf.New(".")
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, errors.Wrapf(err, "set default %s", key)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, v string) (string, any) {
			// AUTHKEEPER_AUTH_SIGNINGSECRET -> auth.signingSecret
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), existing), v
		},
		EnvironFunc: environ,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}
	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	if len(current) == 0 {
		return "", nil, false
	}
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
