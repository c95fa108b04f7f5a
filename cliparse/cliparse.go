package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported DatabaseType values
const (
	DBSQLite   = "sqlite"
	DBPostgres = "postgres"
	DBMySQL    = "mysql"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	SessionSecret     string
	// SessionHookSecret, when set, must be sent in X-Session-Hook-Secret
	// to create a session.
	SessionHookSecret string

	LostArkAPIKey      string
	LostArkBaseURL     string
	GoogleFormsBaseURL string
	GoogleDriveBaseURL string
	UpstreamTimeout    time.Duration

	StaticDir     string
	AllowedOrigin string

	AnalyzeLimit    int
	TextSampleLimit int
	SurveyLocale    string

	LogLevel  string
	LogFormat string
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the environment.
// Variables already set win, and missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("elfaka-site", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mysql)")
	flags.StringVar(&cfg.StaticDir, "static", "", "Directory with the built web app")
	flags.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")
	flags.StringVar(&cfg.SessionHookSecret, "session-hook-secret", "", "Secret required to create sessions (prefer env)")
	flags.StringVar(&cfg.LostArkAPIKey, "lostark-key", "", "Lost Ark API key (prefer env)")

	flags.IntVar(&cfg.AnalyzeLimit, "analyze-limit", 0, "Default responses per analysis")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "text or json")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DATABASE_TYPE", DBSQLite)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	switch cfg.DatabaseType {
	case DBSQLite, DBPostgres, DBMySQL:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != DBSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "site.db"
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	// Optional: session creation is open without it
	if cfg.SessionHookSecret == "" {
		cfg.SessionHookSecret = os.Getenv("SESSION_HOOK_SECRET")
	}

	// Optional: the character proxy answers 503 without it
	if cfg.LostArkAPIKey == "" {
		cfg.LostArkAPIKey = os.Getenv("LOSTARK_API_KEY")
	}
	cfg.LostArkBaseURL = envString("LOSTARK_BASE_URL", "")
	cfg.GoogleFormsBaseURL = envString("GOOGLE_FORMS_BASE_URL", "")
	cfg.GoogleDriveBaseURL = envString("GOOGLE_DRIVE_BASE_URL", "")

	timeout, err := envDuration("UPSTREAM_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.UpstreamTimeout = timeout

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	if cfg.AnalyzeLimit == 0 {
		if cfg.AnalyzeLimit, err = envInt("ANALYZE_LIMIT", 200); err != nil {
			return Config{}, err
		}
	}
	if cfg.TextSampleLimit, err = envInt("TEXT_SAMPLE_LIMIT", 20); err != nil {
		return Config{}, err
	}
	cfg.SurveyLocale = envString("SURVEY_LOCALE", "ko")

	if cfg.LogLevel == "" {
		cfg.LogLevel = envString("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envString("LOG_FORMAT", "text")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
