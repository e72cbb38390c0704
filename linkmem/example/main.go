package main

import (
	"context"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webbmaffian/go-linkmem/internal/retry"
	"github.com/webbmaffian/go-linkmem/linkmem"
)

// A headless producer: walks an avatar in a circle and pushes every tick
// into the consumer's MumbleLink segment.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := linkmem.CreateProducer("PyMumbleLink")

	if err != nil {
		log.Println(err)
		return
	}

	defer p.Close()

	p.SetName("TestLink")
	p.SetDescription("TestLink is a test of the Link plugin.")
	p.SetIdentity("tora-dp")

	if err = p.SetContext([]byte("test-context")); err != nil {
		log.Println(err)
		return
	}

	src, err := linkmem.New(p.Name(), linkmem.ReadOnly)

	if err != nil {
		log.Println(err)
		return
	}

	if err = src.Bind(); err != nil {
		log.Println(err)
		return
	}

	defer src.Close()

	dst, err := linkmem.New("MumbleLink", linkmem.ReadWrite)

	if err != nil {
		log.Println(err)
		return
	}

	err = retry.Bind(ctx, dst, 5*time.Second, func(err error, next time.Duration) {
		log.Println("Waiting for consumer:", err)
	})

	if err != nil {
		log.Println(err)
		return
	}

	defer dst.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var angle float64

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			angle += 3

			r := angle * math.Pi / 180
			p.SetPosition(float32(400+100*math.Cos(r)), float32(300+100*math.Sin(r)))
			p.SetRotation(angle + 90)

			if tick := p.Tick(); tick%50 == 0 {
				log.Println("Tick", tick)
			}

			if err = linkmem.Sync(src, dst); err != nil {
				log.Println(err)
				return
			}
		}
	}
}
