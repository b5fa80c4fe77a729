package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	StorageLocal = "local"
	StorageOSS   = "oss"
)

type (
	ServerConfig struct {
		Host               string
		Address            string
		DebugHost          string
		AllowedOrigins     []string
		ReadTimeout        time.Duration
		WriteTimeout       time.Duration
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
		MaxUploadSize      int64
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	StorageConfig struct {
		Driver string

		// local
		UploadDir  string
		PublicBase string

		// oss
		OSSEndpoint   string
		OSSAccessKey  string
		OSSSecretKey  string
		OSSBucket     string
		OSSPrefix     string
		OSSPublicBase string
	}

	Config struct {
		AppName         string
		Build           string
		Env             string
		Debug           bool
		TestMode        bool
		WorkDir         string
		SecretKey       string
		FrontendBaseURL string
		AdminEmail      string
		RollbarToken    string
		SendgridApiKey  string

		defaultFromEmail string

		Server   ServerConfig
		Database DatabaseConfig
		Storage  StorageConfig
	}
)

// NewConfig reads the configuration for the current ENV (DEV by default).
// Values come from the environment, prefixed by ENV (eg. PROD_SECRETKEY),
// optionally seeded from config/.env.<env>.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "Trinity Driving College")
	conf.SetDefault("secretKey", "zq7-d#r1v3$+t7=nity&cl4ss(b2)#*c1(#yg4h^$cegm2emy")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "Trinity Driving College <noreply@localhost>")
	conf.SetDefault("adminEmail", "admin@localhost")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")

	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverAllowedOrigins", "*")
	conf.SetDefault("serverReadTimeout", 5*time.Second)
	conf.SetDefault("serverWriteTimeout", 30*time.Second)
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("maxUploadSize", 20*1024*1024)

	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbName", "trinity")
	conf.SetDefault("dbUser", "trinity")
	conf.SetDefault("dbPassword", "trinity")
	conf.SetDefault("dbAdminUser", "")
	conf.SetDefault("dbAdminPassword", "")
	conf.SetDefault("dbDisableTLS", true)

	conf.SetDefault("storageDriver", StorageLocal)
	conf.SetDefault("storageUploadDir", "./uploads")
	conf.SetDefault("storagePublicBase", "http://localhost:8000/uploads")
	conf.SetDefault("ossEndpoint", "")
	conf.SetDefault("ossAccessKey", "")
	conf.SetDefault("ossSecretKey", "")
	conf.SetDefault("ossBucket", "")
	conf.SetDefault("ossPrefix", "")
	conf.SetDefault("ossPublicBase", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	wd := os.Getenv("WORKDIR")
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			log.Fatalf("config.os.Getwd: %v", err)
		}
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:          conf.GetString("appName"),
		Build:            conf.GetString("build"),
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		WorkDir:          wd,
		SecretKey:        conf.GetString("secretKey"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		AdminEmail:       conf.GetString("adminEmail"),
		RollbarToken:     conf.GetString("rollbarToken"),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		defaultFromEmail: conf.GetString("defaultFromEmail"),
		Server: ServerConfig{
			Host:               conf.GetString("serverHost"),
			Address:            conf.GetString("serverAddress"),
			DebugHost:          conf.GetString("serverDebugHost"),
			AllowedOrigins:     strings.Split(conf.GetString("serverAllowedOrigins"), ","),
			ReadTimeout:        conf.GetDuration("serverReadTimeout"),
			WriteTimeout:       conf.GetDuration("serverWriteTimeout"),
			ShutdownTimeout:    conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
			MaxUploadSize:      conf.GetInt64("maxUploadSize"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("dbEngine"),
			Host:          conf.GetString("dbHost"),
			Port:          conf.GetString("dbPort"),
			Name:          conf.GetString("dbName"),
			User:          conf.GetString("dbUser"),
			Password:      conf.GetString("dbPassword"),
			AdminUser:     conf.GetString("dbAdminUser"),
			AdminPassword: conf.GetString("dbAdminPassword"),
			DisableTLS:    conf.GetBool("dbDisableTLS"),
		},
		Storage: StorageConfig{
			Driver:        conf.GetString("storageDriver"),
			UploadDir:     conf.GetString("storageUploadDir"),
			PublicBase:    conf.GetString("storagePublicBase"),
			OSSEndpoint:   conf.GetString("ossEndpoint"),
			OSSAccessKey:  conf.GetString("ossAccessKey"),
			OSSSecretKey:  conf.GetString("ossSecretKey"),
			OSSBucket:     conf.GetString("ossBucket"),
			OSSPrefix:     conf.GetString("ossPrefix"),
			OSSPublicBase: conf.GetString("ossPublicBase"),
		},
	}
}

// DefaultFromEmail parses the configured sender; a bare address is accepted.
func (c *Config) DefaultFromEmail() mail.Address {
	if addr, err := mail.ParseAddress(c.defaultFromEmail); err == nil {
		return *addr
	}
	return mail.Address{Name: c.AppName, Address: c.defaultFromEmail}
}

// SetDefaultFromEmail is mostly useful in tests.
func (c *Config) SetDefaultFromEmail(from string) {
	c.defaultFromEmail = from
}

// AdminAddress is the fixed recipient of administrative notifications.
func (c *Config) AdminAddress() mail.Address {
	return mail.Address{Name: c.AppName + " Admin", Address: c.AdminEmail}
}

// Address returns the database host:port.
func (db DatabaseConfig) Address() string {
	return db.Host + ":" + db.Port
}
