package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register debug handlers on the default mux
	"os"
	"syscall"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	echoapi "github.com/wcccd/mihistory/apps/api/echo"
	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/consult"
	"github.com/wcccd/mihistory/core/course"
	"github.com/wcccd/mihistory/core/quiz"
	"github.com/wcccd/mihistory/core/specialist"
	completionsvc "github.com/wcccd/mihistory/services/completion"
	logsvc "github.com/wcccd/mihistory/services/logger"
	memstore "github.com/wcccd/mihistory/storage/memory"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// credential source: env/secret store first; interactive fallback for
	// development use only. Both are equivalent downstream: present or absent.
	if conf.Anthropic.APIKey == "" && conf.Debug {
		conf.Anthropic.APIKey = promptAPIKey()
	}
	if conf.Anthropic.APIKey == "" {
		logger.Warn("no Anthropic API key configured; consultations will return setup guidance")
	}

	registry := specialist.DefaultRegistry()
	client := completionsvc.NewAnthropicService(conf, logger)
	consultSvc := consult.NewService(registry, client, logger)
	quizSvc := quiz.DefaultBank()
	catalog := course.DefaultCatalog()
	sessions := memstore.NewSessionRepository(registry.IDs(), conf.SessionTTL)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.Publish("sessions", expvar.Func(func() interface{} { return sessions.Len() }))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Sessions:   sessions,
			ConsultSvc: consultSvc,
			QuizSvc:    quizSvc,
			Catalog:    catalog,
			Validate:   validate,
			Translator: translator,
		},
	)

	go server.Start()

	// tear down idle sessions in the background
	purgeDone := make(chan struct{})
	go purgeSessions(sessions, conf.SessionTTL, logger, purgeDone)

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))
		close(purgeDone)

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// promptAPIKey reads an API key from the terminal without echoing it.
// Returns "" when stdin is not a terminal (e.g. a deployed process).
func promptAPIKey() string {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return ""
	}
	fmt.Print("Anthropic API Key (for testing): ")
	key, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(key)
}

func purgeSessions(sessions *memstore.SessionRepository, ttl time.Duration, logger core.Logger, done <-chan struct{}) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if n := sessions.PurgeExpired(now); n > 0 {
				logger.Info(fmt.Sprintf("purged %d expired session(s)", n))
			}
		}
	}
}

func newTranslator() ut.Translator {
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	return translator
}
