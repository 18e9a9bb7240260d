// Package config carga la configuración del servicio con koanf:
// defaults -> archivo YAML opcional -> variables de entorno PETHEALTH_*.
package config

import (
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	EnvPrefix = "PETHEALTH_"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

type Config struct {
	Env struct {
		Name    string `koanf:"name"`
		DevMode bool   `koanf:"devMode"`
	} `koanf:"env"`

	HTTP struct {
		Port         int           `koanf:"port"`
		ReadTimeout  time.Duration `koanf:"readTimeout"`
		WriteTimeout time.Duration `koanf:"writeTimeout"`
		MaxBodyBytes int64         `koanf:"maxBodyBytes"`
	} `koanf:"http"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		App    string `koanf:"app"`
	} `koanf:"log"`

	Storage struct {
		Driver string `koanf:"driver"`
		DSN    string `koanf:"dsn"`
	} `koanf:"storage"`

	WeChat struct {
		AppID   string        `koanf:"appId"`
		Secret  string        `koanf:"secret"`
		BaseURL string        `koanf:"baseURL"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"wechat"`

	Session struct {
		Secret string        `koanf:"secret"`
		TTL    time.Duration `koanf:"ttl"`
	} `koanf:"session"`

	Reminders struct {
		UpcomingDays int    `koanf:"upcomingDays"`
		Timezone     string `koanf:"timezone"`
	} `koanf:"reminders"`
}

var defaults = map[string]any{
	"env.name":               EnvDevelopment,
	"env.devMode":            false,
	"http.port":              8080,
	"http.readTimeout":       5 * time.Second,
	"http.writeTimeout":      10 * time.Second,
	"http.maxBodyBytes":      int64(1 << 20),
	"log.level":              "info",
	"log.format":             "text",
	"log.app":                "pet-health",
	"storage.driver":         DriverSQLite,
	"storage.dsn":            "data/pet_health.db",
	"wechat.appId":           "",
	"wechat.secret":          "",
	"wechat.baseURL":         "https://api.weixin.qq.com",
	"wechat.timeout":         5 * time.Second,
	"session.secret":         "",
	"session.ttl":            720 * time.Hour,
	"reminders.upcomingDays": 14,
	"reminders.timezone":     "Local",
}

// Load lee path (si existe; vacío = sin archivo) y aplica overrides de entorno.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, errors.Wrapf(err, "set default %s", key)
		}
	}

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "read config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config %s", path)
		}
	}

	known := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, v string) (string, any) {
			// PETHEALTH_REMINDERS_UPCOMINGDAYS -> reminders.upcomingDays
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), known), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env.Name {
	case EnvDevelopment, EnvProduction:
	default:
		return errors.Errorf("env.name must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env.Name)
	}
	if c.IsProduction() && c.Env.DevMode {
		return errors.New("env.devMode cannot be enabled in production")
	}
	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.Errorf("storage.driver must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Storage.Driver)
	}
	if strings.TrimSpace(c.Storage.DSN) == "" {
		return errors.New("storage.dsn is required")
	}
	if c.Reminders.UpcomingDays <= 0 {
		return errors.New("reminders.upcomingDays must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.IsProduction() && strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session.secret is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env.Name == EnvProduction
}

// Location resuelve reminders.timezone; "Local" usa la zona del proceso.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Reminders.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "reminders.timezone %q", tz)
	}
	return loc, nil
}

// canonicalizeEnvKey alinea cada segmento con las keys conocidas
// (case-insensitive) para que el override pise el default y no cree una key paralela.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := known

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		matched, next, ok := findSegment(current, segment)
		if ok {
			canonical = append(canonical, matched)
			current = next
			continue
		}
		canonical = append(canonical, segment)
		current = nil
	}

	return strings.Join(canonical, ".")
}

func findSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	needle := normalize(segment)
	for key, value := range current {
		if normalize(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
