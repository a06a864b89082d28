// Package config loads the process-wide configuration from YAML files with
// environment-variable overrides. All values are read once at startup and
// treated as immutable afterwards.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Auth  AuthConfig  `json:"auth" yaml:"auth"`
	Token TokenConfig `json:"token" yaml:"token"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig carries the password-hashing parameters. The pepper is a shared
// server-side secret mixed into every hash but never stored alongside it;
// changing it invalidates every existing credential.
type AuthConfig struct {
	// HashAlgorithm is the canonical name of the digest function, one of
	// SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224 or SHA-512/256.
	HashAlgorithm string `json:"hashAlgorithm" yaml:"hashAlgorithm"`
	HashRounds    uint32 `json:"hashRounds" yaml:"hashRounds"`
	SaltLength    int    `json:"saltLength" yaml:"saltLength"`
	Pepper        string `json:"pepper" yaml:"pepper"`
}

// TokenConfig carries the token signing secret and lifetimes.
type TokenConfig struct {
	SecretKey              string `json:"secretKey" yaml:"secretKey"`
	AccessTokenTTLSeconds  int64  `json:"accessTokenTtlSeconds" yaml:"accessTokenTtlSeconds"`
	RefreshTokenTTLSeconds int64  `json:"refreshTokenTtlSeconds" yaml:"refreshTokenTtlSeconds"`
}

// AccessTokenTTL returns the access token lifetime as a duration.
func (c *TokenConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

// RefreshTokenTTL returns the refresh token lifetime as a duration.
func (c *TokenConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLSeconds) * time.Second
}

// LoadWithEnv loads .yaml files through koanf and applies environment
// variable overrides on top.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a dotted path and align each segment
			// with existing YAML keys.
			// Example: AUTH_HASHALGORITHM -> auth.hashAlgorithm
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the configuration and validates it. Any missing or malformed
// required option is a fatal startup error.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every required option. Algorithm names are only checked
// for presence here; the closed-set check happens where the hasher is built,
// so that the same rejection path covers config values and stored records.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Auth.HashAlgorithm) == "" {
		return errors.New("auth.hashAlgorithm is required")
	}
	if cfg.Auth.HashRounds < 1 {
		return errors.New("auth.hashRounds must be at least 1")
	}
	if cfg.Auth.SaltLength < 1 {
		return errors.New("auth.saltLength must be at least 1")
	}
	if cfg.Auth.Pepper == "" {
		return errors.New("auth.pepper is required")
	}
	if cfg.Token.SecretKey == "" {
		return errors.New("token.secretKey is required")
	}
	if cfg.Token.AccessTokenTTLSeconds <= 0 {
		return errors.New("token.accessTokenTtlSeconds must be positive")
	}
	if cfg.Token.RefreshTokenTTLSeconds <= 0 {
		return errors.New("token.refreshTokenTtlSeconds must be positive")
	}

	return nil
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

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
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
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
