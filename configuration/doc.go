// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// The file is a Lua chunk that must return a table; the table is
// mapped onto a struct using the "gluamapper" field tags.  Most of base
// Lua is available, so a configuration can read files or use os.getenv
// to pick up values from the environment.  The global table "arg"
// holds the configuration file name at index zero and any extra
// arguments from index one.
package configuration
