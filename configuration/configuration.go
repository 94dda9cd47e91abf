// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/hashminer/difficulty"
	"github.com/bitmark-inc/hashminer/fault"
	"github.com/bitmark-inc/hashminer/publish"
	"github.com/bitmark-inc/hashminer/remote"
)

// basic defaults (directories and files are relative to the "DataDirectory")
const (
	DefaultInterval = 10 // seconds between cycles
	DefaultURL      = "http://127.0.0.1:5000"

	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "hashminerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// MiningType - proof of work parameters
type MiningType struct {
	Difficulty int `gluamapper:"difficulty" json:"difficulty"`
	Interval   int `gluamapper:"interval" json:"interval"`
}

// Configuration - everything the daemon needs
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                `gluamapper:"pidfile" json:"pidfile"`
	API           remote.Configuration  `gluamapper:"api" json:"api"`
	Mining        MiningType            `gluamapper:"mining" json:"mining"`
	Publish       publish.Configuration `gluamapper:"publish" json:"publish"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Default - configuration before any file or environment is applied
func Default() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		API: remote.Configuration{
			URL:     DefaultURL,
			Timeout: remote.DefaultTimeout,
			Rate:    remote.DefaultRate,
			Burst:   remote.DefaultBurst,
		},

		Mining: MiningType{
			Difficulty: difficulty.Default,
			Interval:   DefaultInterval,
		},

		Publish: publish.Configuration{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// Get - read, override and verify the configuration
//
// an empty fileName means defaults and environment only; a named file
// must exist
func Get(fileName string) (*Configuration, error) {

	options := Default()

	// relative paths are relative to the configuration file
	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != fileName {
		fileName, err = filepath.Abs(filepath.Clean(fileName))
		if nil != err {
			return nil, err
		}
		if _, err := os.Stat(fileName); os.IsNotExist(err) {
			return nil, errors.Wrapf(fault.ErrConfigurationFileAbsent, "file: %q", fileName)
		}
		baseDirectory = filepath.Dir(fileName)

		if err := ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	if err := options.applyEnvironment(os.LookupEnv); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	if err := options.resolvePaths(baseDirectory); nil != err {
		return nil, err
	}

	return options, nil
}

// validate - reject settings that would stop mining
func (c *Configuration) validate() error {
	if _, err := difficulty.New(c.Mining.Difficulty); nil != err {
		return errors.Wrapf(err, "mining.difficulty: %d", c.Mining.Difficulty)
	}
	if c.Mining.Interval <= 0 {
		return errors.Wrapf(fault.ErrInvalidInterval, "mining.interval: %d", c.Mining.Interval)
	}
	if _, err := remote.ValidateURL(c.API.URL); nil != err {
		return errors.Wrapf(err, "api.url: %q", c.API.URL)
	}
	if c.API.Timeout <= 0 {
		return errors.Wrapf(fault.ErrInvalidTimeout, "api.timeout: %d", c.API.Timeout)
	}
	if c.API.Rate <= 0 {
		return errors.Wrapf(fault.ErrInvalidRate, "api.rate: %g", c.API.Rate)
	}
	if c.API.Burst <= 0 {
		return errors.Wrapf(fault.ErrInvalidBurst, "api.burst: %d", c.API.Burst)
	}
	return nil
}

// resolvePaths - force file and directory names to be absolute
func (c *Configuration) resolvePaths(baseDirectory string) error {

	if "" == c.DataDirectory || "." == c.DataDirectory {
		c.DataDirectory = baseDirectory
	}
	c.DataDirectory = ensureAbsolute(baseDirectory, c.DataDirectory)

	if "" != c.PidFile {
		c.PidFile = ensureAbsolute(c.DataDirectory, c.PidFile)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return errors.Errorf("logging.file: %q is not plain name", c.Logging.File)
	}
	c.Logging.Directory = ensureAbsolute(c.DataDirectory, c.Logging.Directory)

	return nil
}

func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// Interval - time to wait between cycles
func (c *Configuration) Interval() time.Duration {
	return time.Duration(c.Mining.Interval) * time.Second
}
