// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/benchmark"
	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "bstbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Benchmark     benchmark.Options    `gluamapper:"benchmark" json:"benchmark"`
	ReportFile    string               `gluamapper:"report_file" json:"report_file"`
	Table         bool                 `gluamapper:"table" json:"table"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Benchmark: benchmark.Options{
			Size:      benchmark.DefaultSize,
			Repeat:    benchmark.DefaultRepeat,
			Seed:      benchmark.DefaultSeed,
			Workloads: nil, // filled in after parsing
		},
		ReportFile: "", // no report file by default
		Table:      true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// a decoded list overwrites a default list element by element, so
	// the default is only applied when nothing was configured
	if 0 == len(options.Benchmark.Workloads) {
		options.Benchmark.Workloads = append([]string{}, benchmark.DefaultWorkloads...)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.ReportFile {
		options.ReportFile = ensureAbsolute(options.DataDirectory, options.ReportFile)
	}

	// the log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrInvalidFileName
	}

	return options, nil
}

// if not absolute, prepend the directory to make an absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
