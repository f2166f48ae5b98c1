package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/data"
	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/middleware"
	"git.thinkinpower.net/cardkit/route"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

func setMode(mode string) {
	switch mode {
	case data.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case data.RunModeTest:
		gin.SetMode(gin.TestMode)
	case data.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	var (
		cfg data.Config
		db  bdata.BinDatabase
		err error
	)
	if cfg, err = data.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.SetupLogger()

	port := flag.Int("p", cfg.Port, "-p 8080")
	mode := flag.String("m", cfg.Mode, "-m [dev|test|release]")
	dataDir := flag.String("d", cfg.DataDir, "-d /home/testuser/bindata")
	flag.Parse()

	if *dataDir != "" {
		if err = os.MkdirAll(*dataDir, 0o755); err != nil {
			logger.Fatalf("create data directory %s: %s", *dataDir, err)
		}
	}
	if db, err = bdata.Open(bdata.BinDatabaseModeMemory, bdata.BinDataConfig{DataDir: *dataDir}); err != nil {
		logger.Fatalf("open bin database: %+v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if *dataDir != "" {
		go func() {
			if err := bdata.Watch(ctx, db, *dataDir); err != nil {
				logger.Errorf("watch bin data: %s", err)
			}
		}()
	}

	logger.Info("starting http server...")
	setMode(*mode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	route.Register(r, db, detect.New(db))

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", *port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		logger.Infof("listening on port %d", *port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down Server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server Shutdown failure.", err)
	}
	logger.Info("Server exit.")
}
