package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/player/component"
	"github.com/oomph-ac/parkour/session"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/worker"
	"github.com/sirupsen/logrus"
)

var CLI struct {
	Debug    bool   `help:"Log movement and input debug output."`
	Settings string `help:"Path of the settings file." default:"settings.yaml" type:"path"`

	Run struct {
		Ticks    uint64 `help:"Amount of ticks to simulate." default:"600"`
		Runners  int    `help:"Amount of runners ticked in parallel." default:"1"`
		Record   string `help:"Write a recording of the first runner to this file." type:"path"`
		Realtime bool   `help:"Tick at the fixed tick rate instead of as fast as possible."`
		Watch    bool   `help:"Reload the settings file while running."`
	} `cmd:"" default:"1" help:"Run the demo course."`

	Replay struct {
		File string `arg:"" help:"Recording to replay." type:"existingfile"`
	} `cmd:"" help:"Replay a recording against the demo course."`

	Config struct{} `cmd:"" help:"Write the default settings file."`
}

// The following program runs scripted runners through a small demo course, optionally recording and
// replaying their runs.
func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("parkour"),
		kong.Description("Headless runner for the parkour movement core."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if CLI.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if os.Getenv("PARKOUR_STATSVIEW") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	var err error
	switch ctx.Command() {
	case "run":
		err = run(logger)
	case "replay <file>":
		err = replay(logger)
	case "config":
		err = settings.Save(CLI.Settings, settings.DefaultFile())
	}
	ctx.FatalIfErrorf(err)
}

func run(log *logrus.Logger) error {
	f, err := settings.Load(CLI.Settings)
	if err != nil {
		return err
	}
	cfg := f.Movement
	w := course()

	runners := make([]*player.Player, max(CLI.Run.Runners, 1))
	for i := range runners {
		p := player.New(log, fmt.Sprintf("runner-%d", i), w, mgl32.Vec3{float32(i%4) * 0.5, 0, 0}, &cfg, f.Settings)
		component.Register(p)
		p.Dbg.LogMovement = CLI.Debug
		p.Dbg.LogInput = CLI.Debug
		runners[i] = p
	}
	defer func() {
		for _, p := range runners {
			_ = p.Close()
		}
	}()

	var rec *session.Recorder
	if CLI.Run.Record != "" {
		if rec, err = session.CreateRecording(CLI.Run.Record, runners[0]); err != nil {
			return err
		}
		runners[0].Handle(rec)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reloads := make(chan settings.File, 1)
	if CLI.Run.Watch {
		go func() {
			err := settings.Watch(sigCtx, CLI.Settings, func(f settings.File) {
				select {
				case reloads <- f:
				default:
				}
			}, func(err error) {
				log.Warnf("unable to reload settings: %v", err)
			})
			if err != nil {
				log.Errorf("settings watcher stopped: %v", err)
			}
		}()
	}

	var ticker *time.Ticker
	if CLI.Run.Realtime {
		ticker = time.NewTicker(time.Second / game.TickRate)
		defer ticker.Stop()
	}

	durations := make([]float32, 0, CLI.Run.Ticks)
	start := time.Now()
loop:
	for tick := uint64(0); tick < CLI.Run.Ticks; tick++ {
		select {
		case <-sigCtx.Done():
			break loop
		case f := <-reloads:
			reloaded := f.Movement
			for _, p := range runners {
				p.SetConfig(&reloaded)
				p.SetSettings(f.Settings)
			}
			log.Info("settings reloaded")
		default:
		}
		if ticker != nil {
			<-ticker.C
		}

		for _, p := range runners {
			feed(p)
		}
		t := time.Now()
		worker.TickPlayers(runners, game.TickDelta)
		durations = append(durations, float32(time.Since(t).Microseconds()))
	}

	if rec != nil {
		if err := rec.Close(); err != nil {
			return err
		}
		log.Infof("recording written to %s", CLI.Run.Record)
	}

	for _, p := range runners {
		c := p.Character()
		log.WithFields(logrus.Fields{
			"state":    c.State,
			"position": c.Body.Position(),
			"health":   c.Health,
		}).Infof("%s finished after %d ticks", p.Name(), p.CurrentTick())
	}
	log.Infof("simulated %d ticks in %v (mean=%.1fus median=%.1fus stddev=%.1fus max=%.1fus)",
		len(durations), time.Since(start), game.Mean(durations), game.Median(durations), game.StandardDeviation(durations), game.Max(durations))
	return nil
}

func replay(log *logrus.Logger) error {
	rec, err := session.ReadRecording(CLI.Replay.File)
	if err != nil {
		return err
	}
	p, res, err := session.Replay(log, rec, course())
	if err != nil {
		log.Errorf("replay diverged after %d verified ticks: %v", res.Verified, err)
		return err
	}
	c := p.Character()
	log.WithFields(logrus.Fields{
		"ticks":    res.Ticks,
		"verified": res.Verified,
		"state":    c.State,
		"position": c.Body.Position(),
	}).Infof("replay of %s matches the recording", rec.Header.Name)
	return nil
}
