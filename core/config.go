package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	// AnthropicConfig configures the outbound chat completion client.
	AnthropicConfig struct {
		APIKey          string
		BaseURL         string
		Model           string
		MaxTokens       int
		Timeout         time.Duration
		SelfTestTimeout time.Duration
	}

	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		AppName  string
		WorkDir  string

		Server     ServerConfig
		Anthropic  AnthropicConfig
		SessionTTL time.Duration

		RollbarToken string
	}
)

// NewConfig loads the app configuration from defaults, an optional
// config/.env.<env> file and environment variables; in that order of
// precedence (lowest first).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Michigan History HIS 220")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":8001")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("anthropicBaseUrl", "https://api.anthropic.com")
	conf.SetDefault("anthropicModel", "claude-3-haiku-20240307")
	conf.SetDefault("anthropicMaxTokens", 500)
	conf.SetDefault("anthropicTimeout", 30*time.Second)
	conf.SetDefault("anthropicSelfTestTimeout", 10*time.Second)
	conf.SetDefault("sessionTtl", 12*time.Hour)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
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
		Debug:    conf.GetBool("debug"),
		TestMode: conf.GetBool("testMode"),
		Env:      env,
		Build:    conf.GetString("build"),
		AppName:  conf.GetString("appName"),
		WorkDir:  wd,
		Server: ServerConfig{
			Addr:            conf.GetString("serverAddr"),
			DebugAddr:       conf.GetString("serverDebugAddr"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Anthropic: AnthropicConfig{
			APIKey:          conf.GetString("anthropicApiKey"),
			BaseURL:         conf.GetString("anthropicBaseUrl"),
			Model:           conf.GetString("anthropicModel"),
			MaxTokens:       conf.GetInt("anthropicMaxTokens"),
			Timeout:         conf.GetDuration("anthropicTimeout"),
			SelfTestTimeout: conf.GetDuration("anthropicSelfTestTimeout"),
		},
		SessionTTL:   conf.GetDuration("sessionTtl"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
}

// Getwd tries to find the project root: the closest parent directory
// containing a go.mod file. go-test changes the working directory to the test
// package being run; this breaks relative config paths.
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd // fall back to the actual working dir (deployed binary)
		}
		currDir = newDir
	}
}
