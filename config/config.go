// Package config holds the runtime knobs for the cs50-ai commands:
// flags first, then CS50AI_-prefixed environment variables, then the
// built-in defaults.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CS50AI"

type Config struct {
	v *viper.Viper
	// positional arguments left over after flag parsing
	args []string
}

// Load parses args and binds every flag into the embedded viper
// instance. Call it once, before reading any setting.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("cs50ai", pflag.ContinueOnError)
	fs.Bool("debug", false, "log at debug level")
	fs.Bool("forward-check", false, "re-propagate arc consistency after each tentative assignment")
	fs.Duration("timeout", 0, "abort the solve after this long (0 means no limit)")
	fs.String("solve-log", "", "write solve statistics to this YAML file")
	fs.Float64("damping", 0.85, "pagerank damping factor")
	fs.Int("samples", 10000, "pagerank random-walk sample count")
	fs.Int("chains", 1, "parallel pagerank sampling chains")
	fs.Uint64("seed", 0, "pagerank RNG seed (0 means unseeded)")
	fs.Bool("hist", false, "print a histogram of the rank distribution")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.v = viper.New()
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

// Args returns the positional arguments that followed the flags.
func (c *Config) Args() []string { return c.args }

func (c *Config) GetBool(key string) bool              { return c.v.GetBool(key) }
func (c *Config) GetString(key string) string          { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int                { return c.v.GetInt(key) }
func (c *Config) GetUint64(key string) uint64          { return c.v.GetUint64(key) }
func (c *Config) GetFloat64(key string) float64        { return c.v.GetFloat64(key) }
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// Set overrides a single setting; tests use it instead of flag strings.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}
