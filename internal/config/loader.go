package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/pulse/internal/errors"
)

// LoadFile reads the config file. With an explicit path the file must
// exist and parse; otherwise .pulse.yaml in the current directory is
// tried and a missing file just means nil (defaults apply).
func LoadFile(explicit string) (*File, error) {
	path := explicit
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot determine current directory",
				"Check directory permissions")
		}
		path = filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			return nil, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'pulse init' to create one, or drop the --config flag")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check the file is valid YAML")
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file: "+path,
			"Check the field types: style is a string, width/height are numbers")
	}
	return &f, nil
}
