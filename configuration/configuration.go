// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// basic defaults (directories are relative to the "DataDirectory")
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "dualindex.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// a fresh map each time since the mapper merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - operations to replay and where to log
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Insert        []interface{}        `gluamapper:"insert" json:"insert"`
	Delete        []interface{}        `gluamapper:"delete" json:"delete"`
	Lookup        []interface{}        `gluamapper:"lookup" json:"lookup"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Print         []string             `gluamapper:"print" json:"print"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Check:         true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(ensureAbsolute(dataDirectory, options.DataDirectory))

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	for _, keys := range []func() ([]record.Key, error){options.InsertKeys, options.DeleteKeys, options.LookupKeys} {
		if _, err := keys(); nil != err {
			return nil, err
		}
	}

	for i, tree := range options.Print {
		tree = strings.ToLower(tree)
		if "primary" != tree && "index" != tree {
			return nil, fault.ErrInvalidTree
		}
		options.Print[i] = tree
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// InsertKeys - keys to insert, in file order
func (c *Configuration) InsertKeys() ([]record.Key, error) {
	return toKeys(c.Insert)
}

// DeleteKeys - keys to delete, in file order
func (c *Configuration) DeleteKeys() ([]record.Key, error) {
	return toKeys(c.Delete)
}

// LookupKeys - keys to look up, in file order
func (c *Configuration) LookupKeys() ([]record.Key, error) {
	return toKeys(c.Lookup)
}

// Lua numbers arrive as float64, strings allow keys beyond 2^53
func toKeys(list []interface{}) ([]record.Key, error) {
	keys := make([]record.Key, len(list))
	for i, item := range list {
		var err error
		switch n := item.(type) {
		case float64:
			keys[i], err = record.NumberKey(n)
		case string:
			keys[i], err = record.ParseKey(n)
		case int:
			keys[i] = record.Key(n)
		case int64:
			keys[i] = record.Key(n)
		default:
			err = fault.ErrInvalidKey
		}
		if nil != err {
			return nil, err
		}
	}
	return keys, nil
}

// ensure the path is absolute, if not, prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
