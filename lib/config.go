package lib

import (
	"os"
	"path/filepath"
	"strings"
)

/* This file implements logic for the 'user controlled' configuration of the blacklist maintainer */

const (
	// FILE NAMES in the 'data directory'
	ConfigFilePath    = "config.json"    // the file path for the maintainer configuration
	BlacklistFilePath = "blacklist.json" // the file path for the maintained blacklist identities
)

// Config is the structure of the user configuration options for the blacklist maintainer
type Config struct {
	MainConfig // main options spanning over all modules
}

// DefaultConfig() returns a Config with developer set options
func DefaultConfig() Config {
	return Config{
		MainConfig: DefaultMainConfig(),
	}
}

// MAIN CONFIG BELOW

type MainConfig struct {
	LogLevel string `json:"logLevel"` // any level includes the levels above it: debug < info < warning < error
}

// DefaultMainConfig() sets log level to 'info'
func DefaultMainConfig() MainConfig {
	return MainConfig{
		LogLevel: "info", // everything but debug is the default
	}
}

// GetLogLevel() parses the log string in the config file into a LogLevel Enum
func (m *MainConfig) GetLogLevel() int32 {
	switch {
	case strings.Contains(strings.ToLower(m.LogLevel), "deb"):
		return DebugLevel
	case strings.Contains(strings.ToLower(m.LogLevel), "inf"):
		return InfoLevel
	case strings.Contains(strings.ToLower(m.LogLevel), "war"):
		return WarnLevel
	case strings.Contains(strings.ToLower(m.LogLevel), "err"):
		return ErrorLevel
	default:
		return DebugLevel
	}
}

// NewConfigFromFile() populates a Config object from a JSON file in the data directory,
// writing (and returning) the default configuration if no file exists yet
func NewConfigFromFile(dataDirPath string) (Config, ErrorI) {
	c := DefaultConfig()
	configFilePath := filepath.Join(dataDirPath, ConfigFilePath)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if err = os.MkdirAll(dataDirPath, os.ModePerm); err != nil {
			return Config{}, ErrWriteFile(err)
		}
		if e := SaveJSONToFile(c, dataDirPath, ConfigFilePath); e != nil {
			return Config{}, e
		}
		return c, nil
	}
	if err := NewJSONFromFile(&c, dataDirPath, ConfigFilePath); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultDataDirPath() is $USERHOME/.zkblacklist
func DefaultDataDirPath() string {
	// get the user home
	home, err := os.UserHomeDir()
	// if unable to get the user home
	if err != nil {
		// fatal error
		panic(err)
	}
	// exit with full default data directory path
	return filepath.Join(home, ".zkblacklist")
}
