package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Datalake DatalakeConfig
	Auth     AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL. Si DatabaseURL no está vacío se usa
// como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si
// no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// DatalakeConfig object storage de origen y de snapshots. SourceBucket aloja
// los cuatro CSV base; SnapshotBucket recibe los snapshots versionados de
// Producto_Sucursales (nunca el mismo objeto de origen).
type DatalakeConfig struct {
	Region          string
	Endpoint        string // opcional, para S3 compatible (MinIO)
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
	SourceBucket    string
	SnapshotBucket  string
	SnapshotPrefix  string
	WriteTimeout    time.Duration
}

// AuthConfig credencial fija de la ruta mutadora. Password acepta texto plano
// o hash bcrypt.
type AuthConfig struct {
	User     string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "catalogo-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalogo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Datalake: DatalakeConfig{
			Region:          getString(v, "DATALAKE_REGION", ""),
			Endpoint:        getString(v, "DATALAKE_ENDPOINT", ""),
			PathStyle:       getBool(v, "DATALAKE_PATH_STYLE", false),
			AccessKeyID:     getString(v, "DATALAKE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "DATALAKE_SECRET_ACCESS_KEY", ""),
			SourceBucket:    getString(v, "DATALAKE_SOURCE_BUCKET", ""),
			SnapshotBucket:  getString(v, "DATALAKE_SNAPSHOT_BUCKET", ""),
			SnapshotPrefix:  getString(v, "DATALAKE_SNAPSHOT_PREFIX", "Producto_Sucursales"),
			WriteTimeout:    time.Duration(getInt(v, "DATALAKE_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Auth: AuthConfig{
			User:     getString(v, "AUTH_USER", ""),
			Password: getString(v, "AUTH_PASSWORD", ""),
		},
	}

	if cfg.Datalake.SourceBucket == "" {
		return nil, fmt.Errorf("DATALAKE_SOURCE_BUCKET es obligatorio")
	}
	if cfg.Datalake.SnapshotBucket == "" {
		return nil, fmt.Errorf("DATALAKE_SNAPSHOT_BUCKET es obligatorio")
	}
	if cfg.Auth.User == "" || cfg.Auth.Password == "" {
		return nil, fmt.Errorf("AUTH_USER y AUTH_PASSWORD son obligatorios")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
