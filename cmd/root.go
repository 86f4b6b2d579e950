package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/app"
	"github.com/nadavh/skillscope/internal/logger"
	"github.com/nadavh/skillscope/internal/session"
)

const appName = "skillscope"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Terminal client for the internal career-matching platform",
		Long:  "SkillScope lets employees take the skills assessment, browse open positions and see their best matches, all from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "SKILLSCOPE_API_URL"); err != nil {
		log.Fatalf("binding SKILLSCOPE_API_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillscope.yaml in current directory)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the platform API")
	rootCmd.PersistentFlags().Bool("test", false, "reduced question bank, one question per category")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "log file path (default skillscope.log)")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("test", rootCmd.PersistentFlags().Lookup("test"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(appName + ".yaml")
	}

	// The config file is optional; flags and env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			log.Fatal(err)
		}
	}
}

// runApp builds the dependencies and launches the TUI.
func runApp() error {
	zl, err := logger.New(viper.GetString("log-file"), viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return err
	}
	defer zl.Sync() //nolint:errcheck

	client := api.New(zl, viper.GetString("api-url"))
	sess := session.New(viper.GetBool("test"))

	zl.Info("starting",
		zap.String("version", version),
		zap.String("api_url", client.BaseURL),
		zap.Bool("test_mode", sess.TestMode),
	)

	return app.Run(app.Options{
		Client:  client,
		Session: sess,
		Logger:  zl,
	})
}
