package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"golang.org/x/sync/errgroup"

	"github.com/sergeysynergy/bookshelf/internal/api/handlers"
	"github.com/sergeysynergy/bookshelf/internal/basicstorage"
	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

type config struct {
	Addr string `env:"RUN_ADDRESS"`
}

func main() {
	cfg := new(config)
	flag.StringVar(&cfg.Addr, "a", ":8080", "Service run address")
	flag.Parse()

	// переменные окружения перекрывают значения флагов
	err := env.Parse(cfg)
	if err != nil {
		log.Fatalln("[FATAL] Failed to parse config -", err)
	}
	log.Printf("[DEBUG] Receive config: %#v\n", cfg)

	st := basicstorage.New()
	bs := bookshelf.New(st)
	h := handlers.New(bs)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.GetRouter(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("[INFO] Starting server at", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// штатное завершение по сигналам: syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		select {
		case s := <-sig:
			log.Println("[INFO] Got signal:", s)
		case <-ctx.Done():
			return nil
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		log.Fatalln("[FATAL]", err)
	}
	log.Println("[INFO] Server gracefully stopped")
}
