package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"conways-life/internal/config"
	"conways-life/internal/sim"
	"conways-life/internal/term"
)

func main() {
	ticks := flag.Int("ticks", 0, "run N generations without a terminal UI and print each one")
	verbose := flag.Bool("v", false, "log state transitions to stderr")
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var opts []sim.Option
	if *verbose {
		opts = append(opts, sim.WithLogger(log.New(os.Stderr, "lifeterm: ", log.LstdFlags)))
	}

	if *ticks > 0 {
		sched := &sim.Manual{}
		ctrl, err := sim.New(cfg, sched, opts...)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := term.Headless(os.Stdout, ctrl, sched, *ticks); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := runInteractive(cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func runInteractive(cfg config.Config, opts []sim.Option) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	view := term.NewView(screen, term.Keymap{
		NextSeed: func() int64 { return time.Now().UnixNano() },
		Density:  cfg.Density,
	})
	loop := sim.NewLoop(64, sim.OnChange(func(c *sim.Controller) { view.Update(c.Snapshot()) }))
	ctrl, err := sim.New(cfg, sim.NewTicker(ctx, loop), opts...)
	if err != nil {
		return err
	}
	view.Update(ctrl.Snapshot())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := loop.Run(ctx, ctrl)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent.
		screen.Fini()
		return nil
	})
	g.Go(func() error {
		if err := view.Run(ctx, loop.Send); err != nil && ctx.Err() == nil {
			return err
		}
		// Quit key: end the other goroutines.
		stop()
		return nil
	})
	return g.Wait()
}
