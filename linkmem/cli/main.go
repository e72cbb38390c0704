package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/webbmaffian/go-linkmem/internal/retry"
	"github.com/webbmaffian/go-linkmem/linkmem"
)

type config struct {
	source      string
	destination string
	interval    time.Duration
	opts        []linkmem.Option
}

func loadConfig() (cfg config, err error) {
	cfg = config{
		source:      envOr("LINKMEM_SOURCE", "PyMumbleLink"),
		destination: envOr("LINKMEM_DESTINATION", "MumbleLink"),
		interval:    100 * time.Millisecond,
	}

	if v := os.Getenv("LINKMEM_INTERVAL"); v != "" {
		if cfg.interval, err = time.ParseDuration(v); err != nil {
			return
		}

		if cfg.interval <= 0 {
			return cfg, fmt.Errorf("LINKMEM_INTERVAL must be positive, got %s", v)
		}
	}

	if dir := os.Getenv("LINKMEM_DIR"); dir != "" {
		cfg.opts = append(cfg.opts, linkmem.WithDir(dir))
	}

	return
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]

	if len(args) > 1 || (len(args) == 1 && args[0] != "watch") {
		log.Println("Usage: cli [watch]")
		return
	}

	cfg, err := loadConfig()

	if err != nil {
		log.Println(err)
		return
	}

	if len(args) == 1 {
		err = watch(ctx, cfg)
	} else {
		err = once(cfg)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}

func open(cfg config) (src, dst *linkmem.Binding, err error) {
	if src, err = linkmem.New(cfg.source, linkmem.ReadOnly, cfg.opts...); err != nil {
		return
	}

	if dst, err = linkmem.New(cfg.destination, linkmem.ReadWrite, cfg.opts...); err != nil {
		return
	}

	return
}

// once performs a single sync pass and prints the destination.
func once(cfg config) (err error) {
	src, dst, err := open(cfg)

	if err != nil {
		return
	}

	if err = src.Bind(); err != nil {
		return
	}

	defer src.Close()

	if err = dst.Bind(); err != nil {
		return
	}

	defer dst.Close()

	err = linkmem.Sync(src, dst)

	if errors.Is(err, linkmem.ErrInvalidContextLength) {
		log.Println(err)
		err = nil
	}

	if err != nil {
		return
	}

	rec, err := dst.Record()

	if err != nil {
		return
	}

	_, err = linkmem.WriteDescription(os.Stdout, rec)
	return
}

// watch waits for both segments, then syncs every interval and keeps the
// destination report on screen until interrupted.
func watch(ctx context.Context, cfg config) (err error) {
	src, dst, err := open(cfg)

	if err != nil {
		return
	}

	for _, b := range []*linkmem.Binding{src, dst} {
		err = retry.Bind(ctx, b, 5*time.Second, func(err error, next time.Duration) {
			log.Printf("Waiting %s for %s: %v", next.Round(time.Millisecond), b.Name(), err)
		})

		if err != nil {
			return
		}

		defer b.Close()
	}

	rec, err := dst.Record()

	if err != nil {
		return
	}

	render := func() error {
		_, err := linkmem.WriteDescription(os.Stdout, rec)
		fmt.Println()
		return err
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		writer := uilive.New()
		writer.Start()
		defer writer.Stop()

		render = func() error {
			_, err := linkmem.WriteDescription(writer, rec)
			return err
		}
	}

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err = linkmem.Sync(src, dst); err != nil {
				if !errors.Is(err, linkmem.ErrInvalidContextLength) {
					return
				}

				log.Println(err)
			}

			if err = render(); err != nil {
				return
			}
		}
	}
}
