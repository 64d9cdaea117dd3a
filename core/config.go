package core

import (
	"strings"
	"time"
)

// ConfigInput is the portal section of the configuration file
type ConfigInput struct {
	FQDN            string `yaml:"fqdn" env:"SODA_FQDN"`
	CatalogURL      string `yaml:"catalogURL" env:"SODA_CATALOG_URL"`
	PolicyContainer string `yaml:"policyContainer" env:"SODA_POLICY_CONTAINER"`
	SessionSecret   string `yaml:"sessionSecret" env:"SODA_SESSION_SECRET"`
	SessionTTL      int    `yaml:"sessionTTL" env:"SODA_SESSION_TTL"`            // seconds
	ProfileCacheTTL int    `yaml:"profileCacheTTL" env:"SODA_PROFILE_CACHE_TTL"` // seconds
	PodTimeout      int    `yaml:"podTimeout" env:"SODA_POD_TIMEOUT"`            // seconds
	CatalogAttempts int    `yaml:"catalogAttempts" env:"SODA_CATALOG_ATTEMPTS"`
}

// Config is the runtime configuration shared by every service
type Config struct {
	FQDN            string
	CatalogURL      string
	PolicyContainer string
	SessionSecret   []byte
	SessionTTL      time.Duration
	ProfileCacheTTL time.Duration
	PodTimeout      time.Duration
	CatalogAttempts int
}

const (
	DefaultCatalogURL      = "https://solidweb.me/soda/catalogs/catalog1"
	DefaultPolicyContainer = "altruism/"
)

func SetupConfig(base ConfigInput) Config {

	catalogURL := base.CatalogURL
	if catalogURL == "" {
		catalogURL = DefaultCatalogURL
	}

	container := base.PolicyContainer
	if container == "" {
		container = DefaultPolicyContainer
	}
	if !strings.HasSuffix(container, "/") {
		container += "/"
	}

	sessionTTL := time.Duration(base.SessionTTL) * time.Second
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}

	cacheTTL := time.Duration(base.ProfileCacheTTL) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	podTimeout := time.Duration(base.PodTimeout) * time.Second
	if podTimeout <= 0 {
		podTimeout = 10 * time.Second
	}

	attempts := base.CatalogAttempts
	if attempts <= 0 {
		attempts = 3
	}

	return Config{
		FQDN:            base.FQDN,
		CatalogURL:      catalogURL,
		PolicyContainer: container,
		SessionSecret:   []byte(base.SessionSecret),
		SessionTTL:      sessionTTL,
		ProfileCacheTTL: cacheTTL,
		PodTimeout:      podTimeout,
		CatalogAttempts: attempts,
	}
}
