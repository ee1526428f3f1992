package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/pkg"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("envfile", ".env", "optional .env file with secrets, loaded outside production")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	if !strings.HasPrefix(strings.ToLower(*env), "prod") {
		if err := godotenv.Load(*envFile); err != nil {
			log.Debugf("no env file loaded [%s]: %s", *envFile, err)
		}
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fittrack-service",
		Rotation: logging.Rotation{
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
		},
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	jwtSecret := os.Getenv("FITTRACK_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("jwt secret not set. use FITTRACK_JWT_SECRET")
	}

	adminUsername := os.Getenv("FITTRACK_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("FITTRACK_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Errorf("admin username and password not set. use FITTRACK_ADMIN_USERNAME and FITTRACK_ADMIN_PASSWORD_HASH")
	}

	foodDataAPIKey := os.Getenv("FITTRACK_FDC_API_KEY")
	if foodDataAPIKey == "" {
		log.Errorf("food data central API key not set, use FITTRACK_FDC_API_KEY env var to set it")
	}

	redisPassword := os.Getenv("FITTRACK_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITTRACK_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			JWTSecret:               jwtSecret,
			FoodDataAPIKey:          foodDataAPIKey,
			DBUser:                  os.Getenv("FITTRACK_DB_USER"),
			DBPassword:              os.Getenv("FITTRACK_DB_PASS"),
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}

// tryGetLastCommitHash assumes the binary runs from the project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
