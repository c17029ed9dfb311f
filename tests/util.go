package testutil

import (
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/wcccd/mihistory/core"
)

// Logger discards everything; keeps tests quiet.
type Logger struct{}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (Logger) Enable(bool)                  {}
func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
func (Logger) Fatal(string, ...interface{}) {}

// NewConfig returns a test configuration that never touches the network by
// default; point Anthropic.BaseURL at an httptest server to exercise the
// completion client.
func NewConfig() *core.Config {
	conf := &core.Config{
		Debug:    true,
		TestMode: true,
		Env:      "TEST",
		Build:    "test",
		AppName:  "Michigan History HIS 220",
	}
	conf.Server.Addr = ":0"
	conf.Server.ShutdownTimeout = time.Second
	conf.Anthropic.Model = "claude-3-haiku-20240307"
	conf.Anthropic.MaxTokens = 500
	conf.Anthropic.Timeout = 2 * time.Second
	conf.Anthropic.SelfTestTimeout = time.Second
	conf.SessionTTL = time.Hour
	return conf
}

// NewValidator returns a validator + translator pair with the app's custom
// validators registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	core.InitValidators(validate, translator)
	return validate, translator
}
