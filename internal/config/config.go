// Package config resolves settings from flags, PULSECHECK_* environment
// variables and an optional .env file.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "PULSECHECK"

// Init wires viper to the environment and to the persistent flags of root.
func Init(root *cobra.Command) {
	_ = godotenv.Load(".env")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if root != nil {
		// Flags use dashes, keys use underscores.
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeySource, SourceSample)
	viper.SetDefault(KeyBaseURL, "http://localhost:3000")
	viper.SetDefault(KeyDataDir, "data")
	viper.SetDefault(KeySeed, 1)
	viper.SetDefault(KeySeriesWindow, 10)
	viper.SetDefault(KeyLogLimit, 10)
	viper.SetDefault(KeyHTTPTimeout, 10*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
}

func Source() string             { return viper.GetString(KeySource) }
func BaseURL() string            { return viper.GetString(KeyBaseURL) }
func DataDir() string            { return viper.GetString(KeyDataDir) }
func Seed() uint64               { return viper.GetUint64(KeySeed) }
func SeriesWindow() int          { return viper.GetInt(KeySeriesWindow) }
func LogLimit() int              { return viper.GetInt(KeyLogLimit) }
func HTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }
func Verbose() bool              { return viper.GetBool(KeyVerbose) }
