package app

import (
	"path/filepath"
	"sync"

	"github.com/dshills/nodepat/internal/project/watcher"
)

// fileSubscription forwards change events for the open file from a
// watcher to the event loop. Events are posted as interrupts so the
// session is only ever touched by the event loop goroutine.
type fileSubscription struct {
	watcher watcher.Watcher
	post    func(data any) error
	logger  *Logger

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// newFileSubscription creates a subscription over w. post is called from
// the subscription goroutine.
func newFileSubscription(w watcher.Watcher, post func(data any) error, logger *Logger) *fileSubscription {
	return &fileSubscription{
		watcher: w,
		post:    post,
		logger:  logger.WithComponent("watcher"),
		done:    make(chan struct{}),
	}
}

// start begins forwarding events. It is safe to call more than once.
func (fs *fileSubscription) start() {
	if fs == nil {
		return
	}
	fs.startOnce.Do(func() {
		fs.wg.Add(1)
		go fs.forward()
	})
}

func (fs *fileSubscription) forward() {
	defer fs.wg.Done()

	events := fs.watcher.Events()
	errs := fs.watcher.Errors()
	for {
		select {
		case <-fs.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			fs.logger.Debug("%s %s", ev.Op, ev.Path)
			if err := fs.post(ev); err != nil {
				fs.logger.Warn("dropped change event for %s: %v", ev.Path, err)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			fs.logger.Warn("%v", err)
		}
	}
}

// follow watches path, or stops watching when path is empty.
func (fs *fileSubscription) follow(path string) error {
	if fs == nil {
		return nil
	}
	if path == "" {
		return fs.watcher.Unwatch()
	}
	if filepath.Clean(path) == fs.watcher.Watching() {
		return nil
	}
	if err := fs.watcher.Watch(path); err != nil {
		return NewComponentError("watcher", "watch "+path, err)
	}
	return nil
}

// stop ends forwarding and closes the watcher.
func (fs *fileSubscription) stop() error {
	if fs == nil {
		return nil
	}
	var err error
	fs.stopOnce.Do(func() {
		close(fs.done)
		err = fs.watcher.Close()
		fs.wg.Wait()
	})
	return err
}
