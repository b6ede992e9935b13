package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"taskboard/internal/adapter/restclient"
	appservice "taskboard/internal/app/service"
	"taskboard/internal/app/session"
	"taskboard/internal/app/store"
	"taskboard/internal/config"
	"taskboard/internal/core/domain"
)

var errNoSession = errors.New("no session token: pass --token or set SESSION_TOKEN")

// app carries what every command needs once flags and environment are read.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	verbose bool
}

// NewRootCmd builds the command tree. Flags override the environment.
func NewRootCmd(version string) *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Task board client for the remote task service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.FromViper(a.v)
			return a.initLogger(cmd.Name() == "serve")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "", "base URL of the remote task service")
	flags.String("token", "", "session token returned by login")
	flags.String("cookie-name", "", "name of the session cookie")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	bindFlag(a.v, config.KeyTaskAPIURL, flags.Lookup("api-url"))
	bindFlag(a.v, config.KeySessionToken, flags.Lookup("token"))
	bindFlag(a.v, config.KeySessionCookieName, flags.Lookup("cookie-name"))

	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(a.newLoginCmd())
	rootCmd.AddCommand(a.newTasksCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func (a *app) initLogger(serving bool) error {
	cfg := zap.NewProductionConfig()
	switch {
	case a.verbose:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case !serving:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func (a *app) restClient() *restclient.Client {
	return restclient.New(restclient.Config{
		BaseURL:       a.cfg.TaskAPIURL,
		Timeout:       a.cfg.TaskAPITimeout,
		RetryCount:    a.cfg.TaskAPIRetryCount,
		RetryWait:     a.cfg.TaskAPIRetryWait,
		SessionCookie: a.cfg.SessionCookieName,
	})
}

func (a *app) taskStore() (*store.TaskStore, error) {
	policy, err := store.ParsePartitionPolicy(a.cfg.PartitionPolicy)
	if err != nil {
		return nil, err
	}
	return store.NewTaskStore(store.WithPartitionPolicy(policy)), nil
}

// synchronizer builds a task synchronizer for the session token given on the
// command line or in the environment.
func (a *app) synchronizer() (*appservice.TaskSynchronizer, error) {
	if a.cfg.SessionToken == "" {
		return nil, errNoSession
	}
	taskStore, err := a.taskStore()
	if err != nil {
		return nil, err
	}
	sess := session.NewWithToken(domain.SessionToken(a.cfg.SessionToken))
	return appservice.NewTaskSynchronizer(a.restClient(), taskStore, sess), nil
}
