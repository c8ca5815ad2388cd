// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// last chance channel, nil until Initialise
var log *logger.L

// Initialise - open the channel used to record a panic before it is raised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - record the caller and a formatted message then panic
//
// used for internal tree corruption, never for caller errors
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	record(message)
	panic(message)
}

// write to the channel or stdout when it was never opened
func record(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
	time.Sleep(100 * time.Millisecond) // to allow logging output
}
