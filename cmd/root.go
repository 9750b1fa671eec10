package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/logger"
	"github.com/saltydk/fplot/session"
)

var (
	// Global flags
	flagConfigFile string
	flagLogFile    string
	flagVerbosity  int

	// Global vars
	log *logrus.Entry
)

var rootCmd = &cobra.Command{
	Use:   "fplot",
	Short: "Plot functions of x and keep them as sessions",
	Long: `fplot evaluates expressions such as "sin(x) * x" over a shared x range,
draws them on one set of axes, and saves the list of expressions as a JSON session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCore()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "config.yaml", "Config file")
	rootCmd.PersistentFlags().StringVarP(&flagLogFile, "log", "l", "", "Log file (rotated), stderr only when empty")
	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "Verbose level")
}

func initCore() error {
	if err := logger.Init(flagVerbosity, flagLogFile); err != nil {
		return err
	}
	log = logger.GetLogger("app")

	// FPLOT_ overrides may also come from a .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed reading .env")
	}

	if err := config.Init(flagConfigFile); err != nil {
		log.WithError(err).Error("Failed initialising config")
		return err
	}

	log.Tracef("Loaded config: %+v", *config.Config)
	return nil
}

// loadRows reads the session file given as the optional first argument.
func loadRows(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	rows, err := session.LoadFile(args[0])
	if err != nil {
		return nil, err
	}

	log.Infof("Loaded %d expressions from %s", len(rows), args[0])
	return rows, nil
}
