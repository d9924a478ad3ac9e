package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	HTTP   HTTPConfig
	Labels LabelsConfig
	Sheets SheetsConfig
	Docs   DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
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

// LabelsConfig límites y valores por defecto de la generación de etiquetas.
type LabelsConfig struct {
	MaxRecords   int    // 0 = sin límite
	MaxPDFLabels int    // 0 = sin límite
	MaxUploadMB  int    // tamaño máximo del archivo subido
	CSVEncoding  string // codificación por defecto de los CSV subidos
}

// MaxUploadBytes devuelve el límite de subida en bytes.
func (c LabelsConfig) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

// SheetsConfig acceso a Google Sheets. Vacío = fuente deshabilitada.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	DefaultRange    string
}

// Enabled indica si hay credenciales y planilla configuradas.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// DocsConfig documentación OpenAPI.
type DocsConfig struct {
	SwaggerFile string // Ruta al swagger.json para la UI en /docs
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, LABELS_MAX_RECORDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "bin-labels"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Labels: LabelsConfig{
			MaxRecords:   getInt(v, "LABELS_MAX_RECORDS", 200000),
			MaxPDFLabels: getInt(v, "LABELS_MAX_PDF_LABELS", 5000),
			MaxUploadMB:  getInt(v, "LABELS_MAX_UPLOAD_MB", 10),
			CSVEncoding:  getString(v, "LABELS_CSV_ENCODING", "utf-8"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: getString(v, "SHEETS_CREDENTIALS_PATH", ""),
			SpreadsheetID:   getString(v, "SHEETS_SPREADSHEET_ID", ""),
			DefaultRange:    getString(v, "SHEETS_DEFAULT_RANGE", "Config!A1:D"),
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "DOCS_SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Labels.MaxRecords < 0 {
		return fmt.Errorf("config: LABELS_MAX_RECORDS no puede ser negativo: %d", c.Labels.MaxRecords)
	}
	if c.Labels.MaxPDFLabels < 0 {
		return fmt.Errorf("config: LABELS_MAX_PDF_LABELS no puede ser negativo: %d", c.Labels.MaxPDFLabels)
	}
	if c.Labels.MaxUploadMB < 1 {
		return fmt.Errorf("config: LABELS_MAX_UPLOAD_MB debe ser al menos 1: %d", c.Labels.MaxUploadMB)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt devuelve def también cuando el valor no es un entero válido.
func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch raw := v.Get(key).(type) {
	case int:
		return raw
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}
