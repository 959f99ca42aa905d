// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/recipecenter/internal/password"
)

const (
	defaultConfigFilePath = "/data/recipecenter.yaml"
	dotEnvPath            = ".env"
	appSecretBytes        = 32
	appSecretFilePerms    = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

var ErrS3Incomplete = errors.New("storage driver s3 requires endpoint, bucket, access_key_id and secret_access_key")

type TLSMode string

const (
	TLSModeAuto     TLSMode = "auto"
	TLSModeStartTLS TLSMode = "starttls"
	TLSModeImplicit TLSMode = "implicit"
	TLSModeNone     TLSMode = "none"
)

func (t TLSMode) Validate() error {
	switch t {
	case TLSModeAuto, TLSModeStartTLS, TLSModeImplicit, TLSModeNone:
		return nil
	}
	return fmt.Errorf("unknown tls mode: %q", t)
}

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

type LogLevel string

// Level maps the configured level onto slog, defaulting to info.
func (l LogLevel) Level() slog.Level {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field validator attached to a placeholder field.
// It passes when the fields named in its parameter (e.g.
// `validate:"allOrNothing=A B C"`) are either all zero or all set. Nil
// pointers count as zero; non-nil pointers are dereferenced first.
//
// A missing field name, an empty parameter or a non-struct parent fails
// the validation so a misconfigured tag is noticed.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.SMTP.Validate" -> "SMTP"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "SMTP":
				fields = "From, Host and Port"
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			case "Admin":
				fields = "Username and Password"
			case "S3":
				fields = "Endpoint, Bucket, AccessKeyID, and SecretAccessKey"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	MaxConns int32  `yaml:"max_conns" validate:"gte=0"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

type S3 struct {
	Endpoint        string `yaml:"endpoint" validate:"omitempty,hostname_port|hostname_rfc1123"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	PublicURL       string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint Bucket AccessKeyID SecretAccessKey"`
}

// Storage selects where recipe images and profile pictures are kept.
type Storage struct {
	Driver    string `yaml:"driver" validate:"oneof=disk s3"`
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
	S3        S3     `yaml:"s3"`
}

type SMTP struct {
	TLSMode       TLSMode `yaml:"tls_mode" validate:"omitempty,validateFn"`
	Port          uint16  `yaml:"port"`
	TLSSkipVerify bool    `yaml:"tls_skip_verify"`
	Username      string  `yaml:"username"`
	Host          string  `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Password      string  `yaml:"password"`
	From          string  `yaml:"from" validate:"omitempty,email"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=From Host Port"`
}

// Enabled reports whether invite emails can be sent.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}

// Admin is the account seeded on first start.
type Admin struct {
	Username  string        `yaml:"username" validate:"omitempty,min=3,max=60"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Username Password"`
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	SMTP       SMTP      `yaml:"smtp"`
	Admin      Admin     `yaml:"admin"`
	Storage    Storage   `yaml:"storage"`
	Database   Database  `yaml:"database"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	ListenAddr string    `yaml:"listen_addr" validate:"required"`
	LogLevel   LogLevel  `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// InviteURL is the page invited users are sent to.
func (c Config) InviteURL() string {
	return strings.TrimRight(c.HostOrigin, "/") + "/register"
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = strings.TrimSpace(string(data))
	}
	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func parsePort(name, value string) (uint16, error) {
	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%q): %w", name, value, err)
	}
	return uint16(port), nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		HostOrigin: loadWithDefault("HOST_ORIGIN", "http://localhost:8080"),
		ListenAddr: loadWithDefault("LISTEN_ADDR", ":8080"),
		LogLevel:   LogLevel(loadWithDefault("LOG_LEVEL", "info")),
	}

	// AppSecret
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", "/data/secret"),
		Version: loadWithDefault("APP_SECRET_VERSION", "1"),
	}
	if v := AppSecretValue(loadWithDefault("APP_SECRET", "")); v != "" {
		conf.AppSecret.Value = &v
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", "localhost"),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	port, err := parsePort("DATABASE_PORT", loadWithDefault("DATABASE_PORT", "5432"))
	if err != nil {
		return conf, err
	}
	conf.Database.Port = port
	if v := loadWithDefault("DATABASE_MAX_CONNS", ""); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return conf, fmt.Errorf("invalid DATABASE_MAX_CONNS (%q): %w", v, err)
		}
		conf.Database.MaxConns = int32(n)
	}

	// Storage
	conf.Storage = Storage{
		Driver:    loadWithDefault("STORAGE_DRIVER", StorageDisk),
		Volume:    loadWithDefault("STORAGE_VOLUME", "/data/files"),
		URLPrefix: loadWithDefault("STORAGE_URL_PREFIX", "/files"),
		S3: S3{
			Endpoint:        loadWithDefault("S3_ENDPOINT", ""),
			Bucket:          loadWithDefault("S3_BUCKET", ""),
			Region:          loadWithDefault("S3_REGION", ""),
			AccessKeyID:     loadWithDefault("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: loadWithDefault("S3_SECRET_ACCESS_KEY", ""),
			PublicURL:       loadWithDefault("S3_PUBLIC_URL", ""),
		},
	}
	useSSL := loadWithDefault("S3_USE_SSL", "true")
	if b, err := strconv.ParseBool(useSSL); err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", useSSL, err)
	} else {
		conf.Storage.S3.UseSSL = b
	}

	// SMTP
	conf.SMTP = SMTP{
		Username: loadWithDefault("SMTP_USERNAME", ""),
		Host:     loadWithDefault("SMTP_HOST", ""),
		Password: loadWithDefault("SMTP_PASSWORD", ""),
		From:     loadWithDefault("SMTP_FROM", ""),
		TLSMode:  TLSMode(loadWithDefault("SMTP_TLS_MODE", string(TLSModeAuto))),
	}
	skipVerify := loadWithDefault("SMTP_TLS_SKIP_VERIFY", "false")
	if b, err := strconv.ParseBool(skipVerify); err != nil {
		return conf, fmt.Errorf("invalid SMTP_TLS_SKIP_VERIFY (%q): %w", skipVerify, err)
	} else {
		conf.SMTP.TLSSkipVerify = b
	}
	// Only default the port when SMTP is being configured
	smtpPort := loadWithDefault("SMTP_PORT", "")
	if smtpPort == "" && (conf.SMTP.From != "" || conf.SMTP.Host != "") {
		smtpPort = "587"
	}
	if smtpPort != "" {
		port, err := parsePort("SMTP_PORT", smtpPort)
		if err != nil {
			return conf, err
		}
		conf.SMTP.Port = port
	}

	// Admin
	conf.Admin = Admin{
		Username:  loadWithDefault("ADMIN_USERNAME", ""),
		FirstName: loadWithDefault("ADMIN_FIRST_NAME", ""),
		LastName:  loadWithDefault("ADMIN_LAST_NAME", ""),
		Password:  AdminPassword(loadWithDefault("ADMIN_PASSWORD", "")),
	}

	if err := validate(&conf); err != nil {
		return conf, err
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func setFileDefaults(config *Config) {
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = "/data/secret"
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = "1"
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = "http://localhost:8080"
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Database.Host == "" {
		config.Database.Host = "localhost"
	}
	if config.Database.Port == 0 {
		config.Database.Port = 5432
	}
	if config.Storage.Driver == "" {
		config.Storage.Driver = StorageDisk
	}
	if config.Storage.Volume == "" {
		config.Storage.Volume = "/data/files"
	}
	if config.Storage.URLPrefix == "" {
		config.Storage.URLPrefix = "/files"
	}
	// Only default the port when SMTP is being configured
	if config.SMTP.Port == 0 && (config.SMTP.From != "" || config.SMTP.Host != "") {
		config.SMTP.Port = 587
	}
	if config.SMTP.TLSMode == "" {
		config.SMTP.TLSMode = TLSModeAuto
	}
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	setFileDefaults(&config)

	if err := validate(&config); err != nil {
		return Config{}, err
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func validate(config *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(v)
	if err := v.Struct(config); err != nil {
		return formatValidationError(err)
	}

	if config.Storage.Driver == StorageS3 && config.Storage.S3.Endpoint == "" {
		return ErrS3Incomplete
	}
	return nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML config file when present, otherwise the
// environment. A .env file in the working directory is loaded first.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(dotEnvPath); err != nil {
		return Config{}, err
	}

	path := loadWithDefault("CONFIG_PATH", defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
