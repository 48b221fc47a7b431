// Package config loads cptrack settings from a TOML file and CPTRACK_*
// environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/alexanderramin/cptrack/internal/codeforces"
	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/domain"
)

type StoreConfig struct {
	Backend     docstore.Backend
	Path        string
	RedisURL    string
	PostgresURL string
}

// Options converts the section into docstore open options.
func (s StoreConfig) Options() docstore.Options {
	return docstore.Options{
		Backend:     s.Backend,
		Path:        s.Path,
		RedisURL:    s.RedisURL,
		PostgresURL: s.PostgresURL,
	}
}

type CodeforcesConfig struct {
	Endpoint       string
	TimeoutMs      int
	MaxSubmissions int
}

// Timeout returns the request timeout as a duration.
func (c CodeforcesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

type LogConfig struct {
	Level slog.Level
	// File is empty for stderr.
	File string
}

type EditConfig struct {
	PasswordHash string
	// Password is only ever read from the environment.
	Password string
}

type Config struct {
	// Path is the config file that was read, or would have been.
	Path       string
	Store      StoreConfig
	Codeforces CodeforcesConfig
	CSESTotal  int
	Courses    []domain.CourseSpec
	Log        LogConfig
	Edit       EditConfig
}

// Default returns the configuration used when no file or variables are set.
func Default() Config {
	return Config{
		Path: DefaultConfigPath(),
		Store: StoreConfig{
			Backend: docstore.BackendSQLite,
			Path:    DefaultDBPath(),
		},
		Codeforces: CodeforcesConfig{
			Endpoint:       codeforces.DefaultEndpoint,
			TimeoutMs:      int(codeforces.DefaultTimeout / time.Millisecond),
			MaxSubmissions: codeforces.DefaultMaxSubmissions,
		},
		CSESTotal: domain.DefaultCSESTotal,
		Courses:   domain.DefaultCourses(),
		Log:       LogConfig{Level: slog.LevelWarn},
	}
}

type fileConfig struct {
	Store struct {
		Backend     string `toml:"backend"`
		Path        string `toml:"path"`
		RedisURL    string `toml:"redis_url"`
		PostgresURL string `toml:"postgres_url"`
	} `toml:"store"`
	Codeforces struct {
		Endpoint       string `toml:"endpoint"`
		TimeoutMs      int    `toml:"timeout_ms"`
		MaxSubmissions int    `toml:"max_submissions"`
	} `toml:"codeforces"`
	CSES struct {
		Total int `toml:"total"`
	} `toml:"cses"`
	Courses []struct {
		Key   string `toml:"key"`
		Name  string `toml:"name"`
		Total int    `toml:"total"`
	} `toml:"courses"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
	Edit struct {
		PasswordHash string `toml:"password_hash"`
	} `toml:"edit"`
}

// Load reads the config file at path (CPTRACK_CONFIG or the XDG default when
// empty), then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("CPTRACK_CONFIG")
	}
	if strings.TrimSpace(path) != "" {
		resolved, err := expandPath(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Path = resolved
	}

	if err := cfg.readFile(); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile() error {
	file, err := os.Open(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Store.Backend); v != "" {
		c.Store.Backend = docstore.Backend(strings.ToLower(v))
	}
	if v := strings.TrimSpace(raw.Store.Path); v != "" {
		c.Store.Path = mustExpand(v)
	}
	c.Store.RedisURL = strings.TrimSpace(raw.Store.RedisURL)
	c.Store.PostgresURL = strings.TrimSpace(raw.Store.PostgresURL)

	if v := strings.TrimSpace(raw.Codeforces.Endpoint); v != "" {
		c.Codeforces.Endpoint = v
	}
	if raw.Codeforces.TimeoutMs > 0 {
		c.Codeforces.TimeoutMs = raw.Codeforces.TimeoutMs
	}
	if raw.Codeforces.MaxSubmissions > 0 {
		c.Codeforces.MaxSubmissions = raw.Codeforces.MaxSubmissions
	}
	if raw.CSES.Total > 0 {
		c.CSESTotal = raw.CSES.Total
	}
	if len(raw.Courses) > 0 {
		c.Courses = c.Courses[:0:0]
		for _, rc := range raw.Courses {
			c.Courses = append(c.Courses, domain.CourseSpec{
				Key:   strings.TrimSpace(rc.Key),
				Name:  strings.TrimSpace(rc.Name),
				Total: rc.Total,
			})
		}
	}
	if v := strings.TrimSpace(raw.Log.Level); v != "" {
		lvl, err := parseLevel(v)
		if err != nil {
			return err
		}
		c.Log.Level = lvl
	}
	if v := strings.TrimSpace(raw.Log.File); v != "" {
		c.Log.File = mustExpand(v)
	}
	c.Edit.PasswordHash = strings.TrimSpace(raw.Edit.PasswordHash)
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CPTRACK_STORE"); v != "" {
		c.Store.Backend = docstore.Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("CPTRACK_DB"); v != "" {
		c.Store.Path = mustExpand(v)
	}
	if v := os.Getenv("CPTRACK_REDIS_URL"); v != "" {
		c.Store.RedisURL = v
	}
	if v := os.Getenv("CPTRACK_POSTGRES_URL"); v != "" {
		c.Store.PostgresURL = v
	}
	if v := os.Getenv("CPTRACK_CF_ENDPOINT"); v != "" {
		c.Codeforces.Endpoint = v
	}
	if v := os.Getenv("CPTRACK_CF_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Codeforces.TimeoutMs = n
		}
	}
	if v := os.Getenv("CPTRACK_LOG_LEVEL"); v != "" {
		lvl, err := parseLevel(v)
		if err != nil {
			return err
		}
		c.Log.Level = lvl
	}
	if v := os.Getenv("CPTRACK_EDIT_PASSWORD_HASH"); v != "" {
		c.Edit.PasswordHash = strings.TrimSpace(v)
	}
	c.Edit.Password = os.Getenv("CPTRACK_EDIT_PASSWORD")
	return nil
}

// Validate rejects settings no component could run with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case docstore.BackendSQLite, docstore.BackendRedis, docstore.BackendPostgres:
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	seen := map[string]bool{}
	for i, course := range c.Courses {
		if course.Key == "" {
			return fmt.Errorf("courses[%d]: key is required", i)
		}
		if seen[course.Key] {
			return fmt.Errorf("courses[%d]: duplicate key %q", i, course.Key)
		}
		seen[course.Key] = true
		if course.Total <= 0 {
			return fmt.Errorf("courses[%d]: total must be positive", i)
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == ":memory:" {
		return trimmed, nil
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
