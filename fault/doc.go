// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared by the tree, the benchmark
// and the commands
//
// each error is a single value of a class type so callers can use
// == or errors.Is and test the class with the IsErrXXX functions
package fault
