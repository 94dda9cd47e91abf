// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/hashminer/fault"
)

// Watcher - background process reporting edits to the configuration
// file; the running daemon does not reload them
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// NewWatcher - start watching fileName
func NewWatcher(fileName string, log *logger.L) (*Watcher, error) {

	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filePath)
	if nil != err {
		watcher.Close()
		log.Errorf("watch: %q  error: %s", filePath, err)
		return nil, errors.Wrapf(err, "watch: %q", filePath)
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Changed - signalled after the file is written
func (w *Watcher) Changed() <-chan struct{} {
	return w.change
}

// Removed - signalled after the file is deleted or renamed
func (w *Watcher) Removed() <-chan struct{} {
	return w.remove
}

// Run - report file events until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			log.Debugf("file event: %v", event)

			if isRemove(event) {
				log.Warnf("configuration file: %q removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			if isChange(event) {
				log.Warnf("configuration file: %q changed: restart to apply", w.filePath)
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

// never block the event loop
func (w *Watcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
