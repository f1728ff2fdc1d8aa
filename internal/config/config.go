package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"basesync/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Sheets SheetsConfig
	Search SearchConfig
	Sync   SyncConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for the S3-compatible file store the spreadsheet
// exports are retrieved from.
type S3Config struct {
	Region       string        `mapstructure:"region"`
	Bucket       string        `mapstructure:"bucket"`
	Endpoint     string        `mapstructure:"endpoint"`
	AccessKey    string        `mapstructure:"access_key"`
	SecretKey    string        `mapstructure:"secret_key"`
	CacheDir     string        `mapstructure:"cache_dir"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds report delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// SheetConfig locates one domain's sheet inside its export: which remote
// source to fetch, which sheet to open, and where the header row sits.
// These defaults are stable contracts; the normalization dictionaries
// assume them.
type SheetConfig struct {
	SourcePrefix string `mapstructure:"source_prefix"`
	SheetName    string `mapstructure:"sheet_name"`
	HeaderRow    int    `mapstructure:"header_row"`
}

// SheetsConfig holds the per-domain sheet settings.
type SheetsConfig struct {
	Cadastro SheetConfig `mapstructure:"cadastro"`
	Produtos SheetConfig `mapstructure:"produtos"`
	Saida    SheetConfig `mapstructure:"saida"`
}

// ForDomain returns the sheet settings for d.
func (s *SheetsConfig) ForDomain(d domain.Domain) SheetConfig {
	switch d {
	case domain.DomainProdutos:
		return s.Produtos
	case domain.DomainSaida:
		return s.Saida
	default:
		return s.Cadastro
	}
}

// SearchConfig holds search engine settings.
type SearchConfig struct {
	// AnyFieldFallback enables the any-field containment fallback when a
	// row has no marker field. Imprecise on purpose; kept toggleable.
	AnyFieldFallback bool `mapstructure:"any_field_fallback"`
}

// SyncConfig holds reconciliation run settings.
type SyncConfig struct {
	ReportRecipient string `mapstructure:"report_recipient"`
}

// Load reads configuration from environment variables with the BASESYNC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BASESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "basesync")
	v.SetDefault("db.password", "basesync_secret")
	v.SetDefault("db.name", "basesync_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "basesync-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.cache_dir", os.TempDir())
	v.SetDefault("s3.fetch_timeout", "60s")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "sa-east-1")
	v.SetDefault("email.from_address", "noreply@basesync.app")
	v.SetDefault("email.from_name", "BaseSync")

	// Sheet defaults. Header rows and sheet names match the export layouts
	// the dictionaries were built against.
	v.SetDefault("sheets.cadastro.source_prefix", "exports/cadastro/")
	v.SetDefault("sheets.cadastro.sheet_name", "Clientes")
	v.SetDefault("sheets.cadastro.header_row", 5)
	v.SetDefault("sheets.produtos.source_prefix", "exports/produtos/")
	v.SetDefault("sheets.produtos.sheet_name", "")
	v.SetDefault("sheets.produtos.header_row", 4)
	v.SetDefault("sheets.saida.source_prefix", "exports/saida/")
	v.SetDefault("sheets.saida.sheet_name", "Base de Dados")
	v.SetDefault("sheets.saida.header_row", 2)

	// Search defaults
	v.SetDefault("search.any_field_fallback", true)

	// Sync defaults
	v.SetDefault("sync.report_recipient", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "BASESYNC_SERVER_PORT",
		"server.read_timeout":  "BASESYNC_SERVER_READ_TIMEOUT",
		"server.write_timeout": "BASESYNC_SERVER_WRITE_TIMEOUT",
		"server.environment":   "BASESYNC_SERVER_ENVIRONMENT",
		"db.host":              "BASESYNC_DB_HOST",
		"db.port":              "BASESYNC_DB_PORT",
		"db.user":              "BASESYNC_DB_USER",
		"db.password":          "BASESYNC_DB_PASSWORD",
		"db.name":              "BASESYNC_DB_NAME",
		"db.sslmode":           "BASESYNC_DB_SSLMODE",
		"db.max_open":          "BASESYNC_DB_MAX_OPEN",
		"db.max_idle":          "BASESYNC_DB_MAX_IDLE",
		"s3.region":            "BASESYNC_S3_REGION",
		"s3.bucket":            "BASESYNC_S3_BUCKET",
		"s3.endpoint":          "BASESYNC_S3_ENDPOINT",
		"s3.access_key":        "BASESYNC_S3_ACCESS_KEY",
		"s3.secret_key":        "BASESYNC_S3_SECRET_KEY",
		"s3.cache_dir":         "BASESYNC_S3_CACHE_DIR",
		"s3.fetch_timeout":     "BASESYNC_S3_FETCH_TIMEOUT",
		"log.level":            "BASESYNC_LOG_LEVEL",
		"log.format":           "BASESYNC_LOG_FORMAT",
		"cors.allowed_origins": "BASESYNC_CORS_ALLOWED_ORIGINS",
		"email.provider":       "BASESYNC_EMAIL_PROVIDER",
		"email.region":         "BASESYNC_EMAIL_REGION",
		"email.from_address":   "BASESYNC_EMAIL_FROM_ADDRESS",
		"email.from_name":      "BASESYNC_EMAIL_FROM_NAME",
		"sheets.cadastro.source_prefix": "BASESYNC_SHEETS_CADASTRO_SOURCE_PREFIX",
		"sheets.cadastro.sheet_name":    "BASESYNC_SHEETS_CADASTRO_SHEET_NAME",
		"sheets.cadastro.header_row":    "BASESYNC_SHEETS_CADASTRO_HEADER_ROW",
		"sheets.produtos.source_prefix": "BASESYNC_SHEETS_PRODUTOS_SOURCE_PREFIX",
		"sheets.produtos.sheet_name":    "BASESYNC_SHEETS_PRODUTOS_SHEET_NAME",
		"sheets.produtos.header_row":    "BASESYNC_SHEETS_PRODUTOS_HEADER_ROW",
		"sheets.saida.source_prefix":    "BASESYNC_SHEETS_SAIDA_SOURCE_PREFIX",
		"sheets.saida.sheet_name":       "BASESYNC_SHEETS_SAIDA_SHEET_NAME",
		"sheets.saida.header_row":       "BASESYNC_SHEETS_SAIDA_HEADER_ROW",
		"search.any_field_fallback":     "BASESYNC_SEARCH_ANY_FIELD_FALLBACK",
		"sync.report_recipient":         "BASESYNC_SYNC_REPORT_RECIPIENT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BASESYNC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BASESYNC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:       v.GetString("s3.region"),
		Bucket:       v.GetString("s3.bucket"),
		Endpoint:     v.GetString("s3.endpoint"),
		AccessKey:    v.GetString("s3.access_key"),
		SecretKey:    v.GetString("s3.secret_key"),
		CacheDir:     v.GetString("s3.cache_dir"),
		FetchTimeout: v.GetDuration("s3.fetch_timeout"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Sheets = SheetsConfig{
		Cadastro: SheetConfig{
			SourcePrefix: v.GetString("sheets.cadastro.source_prefix"),
			SheetName:    v.GetString("sheets.cadastro.sheet_name"),
			HeaderRow:    v.GetInt("sheets.cadastro.header_row"),
		},
		Produtos: SheetConfig{
			SourcePrefix: v.GetString("sheets.produtos.source_prefix"),
			SheetName:    v.GetString("sheets.produtos.sheet_name"),
			HeaderRow:    v.GetInt("sheets.produtos.header_row"),
		},
		Saida: SheetConfig{
			SourcePrefix: v.GetString("sheets.saida.source_prefix"),
			SheetName:    v.GetString("sheets.saida.sheet_name"),
			HeaderRow:    v.GetInt("sheets.saida.header_row"),
		},
	}
	cfg.Search = SearchConfig{
		AnyFieldFallback: v.GetBool("search.any_field_fallback"),
	}
	cfg.Sync = SyncConfig{
		ReportRecipient: v.GetString("sync.report_recipient"),
	}

	return cfg, nil
}
