package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
	config     = &Config{}

	sessions = newSessionStore()
)

func init() {
	const (
		defaultConfigPath = "/run/config.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if config.Log.Filename != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   config.Log.Filename,
			MaxSize:    config.Log.MaxSize,
			MaxBackups: config.Log.MaxBackups,
			MaxAge:     config.Log.MaxAge,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := ReadConfig(configPath, config); err != nil {
		log.Fatalf("unable to load config %s: %s", configPath, err.Error())
	}

	setupLogging()

	log.Info("starting up, mode = ", config.Mode)
	log.WithFields(config.Fields()).Debug("config")

	server := &http.Server{
		Addr:    config.Addr,
		Handler: buildHandler(),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", config.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
