// Package config loads the pgmodel configuration file and resolves the
// database connection.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"github.com/syssam/pgmodel/compiler/gen"
	"github.com/syssam/pgmodel/compiler/load"
	"github.com/syssam/pgmodel/dialect"
	"github.com/syssam/pgmodel/dialect/sql"
)

// EnvDatabaseURL is the environment variable read when no URL is
// configured.
const EnvDatabaseURL = "DATABASE_URL"

// Connection defaults of discrete fields.
const (
	DefaultHost = "localhost"
	DefaultPort = 5432
)

// Config is the content of a pgmodel.yaml file.
type Config struct {
	Package  string   `yaml:"package"`
	Output   string   `yaml:"output"`
	Schemas  []string `yaml:"schemas"`
	Header   string   `yaml:"header"`
	Database Database `yaml:"database"`
}

// Database holds the connection settings. URL takes precedence over the
// DATABASE_URL environment variable, which takes precedence over the
// discrete fields.
type Database struct {
	Driver   string `yaml:"driver"`
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// Load reads the YAML configuration at path. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. An empty document gives the zero
// Config.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &c, nil
}

// LoadEnv loads environment files into the process environment without
// overriding variables already set. Without files, ".env" is loaded when
// present.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// GenConfig returns the generator configuration, validated. Every invalid
// setting is reported, not only the first.
func (c *Config) GenConfig() (*gen.Config, error) {
	var opts []gen.Option
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Output != "" {
		opts = append(opts, gen.WithTarget(c.Output))
	}
	if len(c.Schemas) > 0 {
		opts = append(opts, gen.WithSchemas(c.Schemas...))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	cfg := &gen.Config{}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DriverName returns the database/sql driver, "postgres" by default.
func (d *Database) DriverName() (string, error) {
	if d.Driver == "" {
		return dialect.PQ, nil
	}
	if dialect.Of(d.Driver) == "" {
		return "", gen.NewConfigError("database.driver", d.Driver, fmt.Sprintf("supported drivers are %s", strings.Join(dialect.Drivers, ", ")))
	}
	return d.Driver, nil
}

// DSN resolves the connection URL. getenv is used to read DATABASE_URL;
// os.Getenv is used when nil.
func (d *Database) DSN(getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch env := getenv(EnvDatabaseURL); {
	case d.URL != "":
		return d.resolveURL(d.URL, "database.url")
	case env != "":
		return d.resolveURL(env, EnvDatabaseURL)
	default:
		return d.discrete()
	}
}

// resolveURL accepts postgres:// URLs and their "jdbc:" prefixed form.
// Credentials of the discrete fields fill a URL without user info.
func (d *Database) resolveURL(raw, option string) (string, error) {
	u, err := url.Parse(strings.TrimPrefix(raw, "jdbc:"))
	if err != nil {
		return "", gen.NewConfigError(option, nil, fmt.Sprintf("invalid database URL: %v", err))
	}
	if u.User == nil && d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	dsn := u.String()
	if _, err := pq.ParseURL(dsn); err != nil {
		return "", gen.NewConfigError(option, nil, err.Error())
	}
	return dsn, nil
}

func (d *Database) discrete() (string, error) {
	switch {
	case d.Name == "":
		return "", gen.NewConfigError("database.name", nil, "no database name provided")
	case d.User == "":
		return "", gen.NewConfigError("database.user", nil, "no database user provided")
	case d.Password == "":
		return "", gen.NewConfigError("database.password", nil, "no database password provided")
	}
	host, port := d.Host, d.Port
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String(), nil
}

// Open resolves the connection, opens it and checks it is alive.
// Connection failures are catalog errors.
func Open(ctx context.Context, d *Database, getenv func(string) string) (*sql.Driver, error) {
	driver, err := d.DriverName()
	if err != nil {
		return nil, err
	}
	dsn, err := d.DSN(getenv)
	if err != nil {
		return nil, err
	}
	drv, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, load.NewCatalogError("connect", "", "", err)
	}
	if err := drv.Ping(ctx); err != nil {
		drv.Close()
		return nil, load.NewCatalogError("connect", "", "", err)
	}
	return drv, nil
}
