// Package config loads the YAML configuration consumed by the CLI layer:
// the report timezone, the start-of-week convention, and the Presto server
// connection settings.
//
// Configuration is read once and turned into an immutable session snapshot
// before any query work begins; nothing in the rewriter or marshaller
// reads this package.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document.
type Config struct {
	// ReportTimezone is the IANA zone results are interpreted in.
	// Empty means no report zone: use the connection default.
	ReportTimezone string `yaml:"report_timezone"`

	// StartOfWeek is the weekday weeks begin on ("sunday".."saturday").
	// Empty defaults to sunday.
	StartOfWeek string `yaml:"start_of_week"`

	// Server holds Presto connection settings.
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds the Presto server connection settings.
type ServerConfig struct {
	// URI is the server URI, e.g. "https://user@coordinator:8443".
	URI string `yaml:"uri"`

	// Catalog and Schema select the default namespace.
	Catalog string `yaml:"catalog"`
	Schema  string `yaml:"schema"`

	// Source tags queries in the server's query log.
	Source string `yaml:"source"`

	// SessionProperties are passed through to the session verbatim.
	SessionProperties map[string]string `yaml:"session_properties"`

	// SSLCertPath points at a custom CA certificate, if any.
	SSLCertPath string `yaml:"ssl_cert_path"`

	// Kerberos holds Kerberos authentication settings; zero value means
	// Kerberos is disabled.
	Kerberos KerberosConfig `yaml:"kerberos"`
}

// KerberosConfig holds Kerberos settings for the Presto connection.
type KerberosConfig struct {
	Enabled           bool   `yaml:"enabled"`
	Principal         string `yaml:"principal"`
	Realm             string `yaml:"realm"`
	KeytabPath        string `yaml:"keytab_path"`
	ConfigPath        string `yaml:"config_path"`
	RemoteServiceName string `yaml:"remote_service_name"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field values without touching the network.
func (c *Config) Validate() error {
	if c.ReportTimezone != "" {
		if _, err := time.LoadLocation(c.ReportTimezone); err != nil {
			return fmt.Errorf("report_timezone: %w", err)
		}
	}
	if _, err := c.StartOfWeekday(); err != nil {
		return err
	}
	if k := c.Server.Kerberos; k.Enabled {
		if k.Principal == "" || k.KeytabPath == "" {
			return fmt.Errorf("kerberos: principal and keytab_path are required when enabled")
		}
	}
	return nil
}

// weekdays maps configuration names to weekdays. Read-only after
// initialization.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// StartOfWeekday resolves the configured start of week, defaulting to
// Sunday when unset.
func (c *Config) StartOfWeekday() (time.Weekday, error) {
	if c.StartOfWeek == "" {
		return time.Sunday, nil
	}
	day, ok := weekdays[strings.ToLower(c.StartOfWeek)]
	if !ok {
		return time.Sunday, fmt.Errorf("start_of_week: unknown weekday %q", c.StartOfWeek)
	}
	return day, nil
}
