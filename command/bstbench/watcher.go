// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// watch a single file and signal changes and removal
//
// the directory is watched rather than the file so that editors that
// replace the file by rename still produce events
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Run - background process forwarding file events until shutdown
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watch: %q  error: %s", w.filePath, err)
		return
	}
	w.log.Infof("watching: %q", w.filePath)

	for {
		select {
		case <-shutdown:
			return

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file: %q removed", w.filePath)
				send(w.remove)
			} else if isChange(event) {
				send(w.change)
			}
		}
	}
}

// non-blocking: an event already pending covers this one
func send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
}

func isChange(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
