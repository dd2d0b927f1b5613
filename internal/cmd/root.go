package cmd

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:   "bigfloat",
	Short: "correctly rounded binary floating-point calculator",
	Long:  "bigfloat evaluates arbitrary-precision floating-point operations and checks them against reference vectors",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")

	RootCmd.PersistentFlags().Uint("prec", 64, "precision of results in bits")
	RootCmd.PersistentFlags().String("mode", "nearest", "rounding mode: floor, ceiling, down, up, nearest or exact")
	RootCmd.PersistentFlags().Uint("parse-prec", 64, "precision of operands given without a #prec suffix")
}

// setup loads the configuration file, binds the flags of cmd and configures
// logging.
func setup(cmd *cobra.Command) error {
	viper.SetEnvPrefix("bigfloat")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	log.WithFields(log.Fields{
		"prec": viper.GetUint("prec"),
		"mode": viper.GetString("mode"),
	}).Debug("configuration loaded")
	return nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
