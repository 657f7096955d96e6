package worker

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for f := range workerQueue {
		run(f)
	}
}

// run runs a job, reporting a panic instead of taking the worker down with it.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("component", "worker")
			})
			hub.Recover(oerror.New(fmt.Sprintf("%v", err)))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues a job on the worker pool. It blocks while every worker is busy and the queue is full.
func Submit(f func()) {
	workerQueue <- f
}

// TickPlayers ticks every player once on the worker pool and returns when all of them were ticked.
// Players may share a world, but a player must not appear twice in the slice.
func TickPlayers(players []*player.Player, dt float32) {
	var wg sync.WaitGroup
	wg.Add(len(players))
	for _, p := range players {
		p := p
		Submit(func() {
			defer wg.Done()
			p.Tick(dt)
		})
	}
	wg.Wait()
}
