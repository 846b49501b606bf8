package main

import (
	"github.com/pgaray/landing-api/internal/config"
	"github.com/spf13/pflag"
)

// options holds command line overrides applied on top of the loaded config
type options struct {
	configPath string
	envDir     string
	host       string
	port       int
	flags      *pflag.FlagSet
}

func registerFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.configPath, "config", "configs/config.yaml", "YAML config file (skipped when missing)")
	fs.StringVar(&opts.envDir, "env-dir", "", "directory holding .env and .env.local")
	fs.StringVar(&opts.host, "host", "", "listen host (overrides BACKEND_HOST)")
	fs.IntVarP(&opts.port, "port", "p", 0, "listen port (overrides BACKEND_PORT)")
	opts.flags = fs
}

// loadConfig reads .env files, the YAML file and the environment, then
// applies any flags set explicitly on the command line.
func (o *options) loadConfig() (*config.Config, error) {
	config.LoadDotEnv(o.envDir)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.flags != nil {
		if o.flags.Changed("host") {
			cfg.Server.Host = o.host
		}
		if o.flags.Changed("port") {
			cfg.Server.Port = o.port
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
