package main

import (
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/source"
)

// appConfig is the file-backed service configuration. Every field has a
// default, so the binary runs without a config file at all.
type appConfig struct {
	Logging struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"logging"`
	Server struct {
		Host      string `mapstructure:"host"`
		Port      int    `mapstructure:"port"`
		Algorithm string `mapstructure:"algorithm"`
	} `mapstructure:"server"`
	Pprof struct {
		Enable bool   `mapstructure:"enable"`
		Host   string `mapstructure:"host"`
		Port   int    `mapstructure:"port"`
	} `mapstructure:"pprof"`
}

var cfg appConfig

// initConfig reads the configuration file into cfg. A missing file at the
// default path falls back to defaults; an explicitly chosen file must
// exist.
func initConfig(c *cli.Context) error {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.json", true)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8085)
	viper.SetDefault("server.algorithm", source.AlgorithmPCG)
	viper.SetDefault("pprof.enable", false)
	viper.SetDefault("pprof.host", "127.0.0.1")
	viper.SetDefault("pprof.port", 8086)

	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		if c.GlobalIsSet("config") {
			return errors.Wrap(err, "config: read")
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "config: unmarshal")
	}
	return nil
}
