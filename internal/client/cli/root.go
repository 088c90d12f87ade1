package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/hradmin/internal/buildinfo"
	"github.com/dmitrijs2005/hradmin/internal/client/config"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/logging"
)

type appFunc func(ctx context.Context, a *App, args []string) error

// NewRootCommand builds the hradmin command tree. Without a subcommand it
// starts the shell.
func NewRootCommand(s Streams) *cobra.Command {
	root := &cobra.Command{
		Use:           "hradmin",
		Short:         "Admin console for the HR dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	flags := config.RegisterFlags(root.PersistentFlags())

	withApp := func(fn appFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Load()
			if err != nil {
				return err
			}
			a, err := NewApp(cmd.Context(), cfg, newLogger(cfg, s), s)
			if err != nil {
				return err
			}
			defer a.Close()
			return fn(cmd.Context(), a, args)
		}
	}

	// The cipher commands need only the key.
	withCipher := func(fn func(a *App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Load()
			if err != nil {
				return err
			}
			c, err := cryptox.NewCipher(cfg.CipherKey)
			if err != nil {
				return err
			}
			return fn(&App{config: cfg, cipher: c, out: s.Out}, args)
		}
	}

	shell := withApp(func(ctx context.Context, a *App, _ []string) error { return a.RunShell(ctx) })
	root.RunE = shell

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE:  shell,
		},
		&cobra.Command{
			Use:   "login",
			Short: "Sign in and store the session",
			Args:  cobra.NoArgs,
			RunE:  withApp(func(ctx context.Context, a *App, _ []string) error { return a.Login(ctx) }),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			Args:  cobra.NoArgs,
			RunE:  withApp(func(ctx context.Context, a *App, _ []string) error { return a.Logout(ctx) }),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the session state, refreshing the token when due",
			Args:  cobra.NoArgs,
			RunE:  withApp(func(ctx context.Context, a *App, _ []string) error { return a.Status(ctx) }),
		},
		&cobra.Command{
			Use:   "encrypt <text>",
			Short: "Encrypt a field value",
			Args:  cobra.MinimumNArgs(1),
			RunE:  withCipher((*App).Encrypt),
		},
		&cobra.Command{
			Use:   "decrypt <base64>",
			Short: "Decrypt a field value",
			Args:  cobra.ExactArgs(1),
			RunE:  withCipher((*App).Decrypt),
		},
		&cobra.Command{
			Use:   "hmac <text>",
			Short: "Print the keyed hash of a value",
			Args:  cobra.MinimumNArgs(1),
			RunE:  withCipher((*App).HMAC),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func newLogger(cfg *config.Config, s Streams) logging.Logger {
	level, err := cfg.Level()
	if err != nil {
		return logging.NewNop()
	}
	return logging.New(int(level), s.Err)
}

// Execute runs the command line with args and returns the exit code.
func Execute(ctx context.Context, args []string, s Streams) int {
	root := NewRootCommand(s)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(s.Err, "error:", describe(err))
		return 1
	}
	return 0
}
