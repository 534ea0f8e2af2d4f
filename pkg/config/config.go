package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env). Nada de credenciales en el código fuente: la
// URI de MongoDB y el secret JWT llegan siempre por configuración.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	CORS   CORSConfig
	Upload UploadConfig
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

// MongoConfig conexión al store de documentos.
type MongoConfig struct {
	URI      string // mongodb://... o mongodb+srv://...
	Database string
}

// JWTConfig emisión de tokens en el login.
type JWTConfig struct {
	Enabled bool
	Secret  string
}

// CORSConfig origen del cliente permitido.
type CORSConfig struct {
	Origin string
}

// UploadConfig almacenamiento local de imágenes subidas.
type UploadConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, MONGO_URI, MONGO_DB, JWT_ENABLED, JWT_SECRET, CORS_ORIGIN,
// UPLOAD_DIR.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "empleados-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DB", "empleados"),
		},
		JWT: JWTConfig{
			Enabled: getBool(v, "JWT_ENABLED", false),
			Secret:  getString(v, "JWT_SECRET", ""),
		},
		CORS: CORSConfig{
			Origin: getString(v, "CORS_ORIGIN", "http://localhost:3000"),
		},
		Upload: UploadConfig{
			Dir: getString(v, "UPLOAD_DIR", "./uploaded"),
		},
	}

	if cfg.JWT.Enabled && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_ENABLED requiere JWT_SECRET")
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
