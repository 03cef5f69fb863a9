package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/docnav/internal/docs"
)

// Kind represents the type of data emitted by the watcher.
type Kind int

const (
	KindSite Kind = iota
)

// Event conveys a reloaded site or the error that prevented reloading.
type Event struct {
	Kind Kind
	Site *docs.Site
	Err  error
}

// Watcher polls the site file and its pages at a fixed interval and publishes
// a reloaded site whenever any of them changes.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling site every interval. A non-positive interval or a
// site without a backing file yields a watcher that never emits.
func NewWatcher(site *docs.Site, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if interval > 0 && site != nil && site.File() != "" {
		w.wg.Add(1)
		go w.poll(site)
	}
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns a channel of site events. It closes after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(site *docs.Site) {
	defer w.wg.Done()

	reloads := newThrottle(w.interval)
	baseline := site.ModTime()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current := site.ModTime()
		if !current.After(baseline) {
			continue
		}
		if !reloads.wait(w.ctx) {
			return
		}
		next, err := docs.LoadSite(site.File())
		evt := Event{Kind: KindSite, Site: next, Err: err}
		if err != nil {
			evt.Err = fmt.Errorf("reload site: %w", err)
		} else {
			site = next
			current = site.ModTime()
		}
		baseline = current
		select {
		case <-w.ctx.Done():
			return
		case w.events <- evt:
		}
	}
}
