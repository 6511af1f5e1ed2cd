package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PowerNightVS/discord-web/app"
	"github.com/PowerNightVS/discord-web/config"
	"github.com/PowerNightVS/discord-web/db"
	"github.com/PowerNightVS/discord-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = logger.Setup(viper.GetString("app.log_level"))
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	if viper.GetBool("setup-db") {
		setupDB()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := app.NewRouter(ctx, app.NewDeps(), app.RouterConfigFromViper())
	if err != nil {
		zap.L().Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetInt("host.port")),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Graceful shutdown failed", zap.Error(err))
	}
}

func setupDB() {
	driver := viper.GetString("database.driver")

	conn, err := db.New(driver, viper.GetString("database.dsn"))
	if err != nil {
		zap.L().Fatal("Failed to create database", zap.Error(err))
	}

	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.Close()
	}

	zap.L().Info("Database created successfully", zap.String("driver", driver))
}
