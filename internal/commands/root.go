package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"flexzone/internal/api"
	"flexzone/internal/config"
	"flexzone/internal/models"
	"flexzone/internal/portal"
	"flexzone/pkg/logger"
	"flexzone/pkg/tracing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	globalConfig   *config.Config
	shutdownTracer func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "flexzone",
	Short: "FlexZone - member portal for the FlexZone gym",
	Long: `FlexZone (flexzone) is the member portal for the FlexZone gym.
Log in, check your membership and payments, see your assigned trainer and buy a
membership plan, from one-shot commands or the interactive portal.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalConfig == nil {
			path, err := config.GetGlobalConfigPath()
			if err != nil {
				return err
			}
			if globalConfig, err = config.Load(path); err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
		}

		configDir, err := config.GetGlobalConfigDir()
		if err != nil {
			return err
		}

		if err := logger.Initialize(logger.Config{
			Level:   globalConfig.LogLevel,
			LogDir:  filepath.Join(configDir, "logs"),
			Console: globalConfig.LogConsole,
		}); err != nil {
			return fmt.Errorf("error initializing logger: %w", err)
		}

		shutdown, err := tracing.InitTracer(version, globalConfig.OTLPEndpoint)
		if err != nil {
			logger.Warn("Tracing disabled", zap.Error(err))
		} else {
			shutdownTracer = shutdown
		}

		logger.Debug("Command started", zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdownTracer != nil {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Warn("Failed to flush traces", zap.Error(err))
			}
		}
		logger.Sync()
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// openSession returns the session store in the global config directory
func openSession() (*models.SessionStore, error) {
	configDir, err := config.GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}
	return models.NewSessionStore(configDir), nil
}

// newClient returns a backend client that authenticates with the stored session
func newClient(session *models.SessionStore) *api.Client {
	return api.NewClient(globalConfig.ServerURL, session)
}

// printRedirect tells the member where a view wants them to go next
func printRedirect(route portal.Route) {
	switch route {
	case portal.RouteLogin:
		color.Yellow("Please log in: flexzone login --email <email>")
	case portal.RouteRegister:
		color.Yellow("Complete your registration: flexzone register")
	}
}
