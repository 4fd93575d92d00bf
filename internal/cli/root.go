// Package cli assembles the runcheck command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/runcheck/pkg/log"
	"github.com/MacroPower/runcheck/pkg/vercheck"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// NewRootCmd returns the root command. Running it checks the release
// token advertised by the current runtime and prints the result line.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		return runCheck(cc, runtime.Version())
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runCheck checks the runtime's version string and prints the single
// result line on the command's stdout. An absent release token
// propagates [vercheck.ErrPatternNotFound] so main can exit nonzero
// without printing anything.
func runCheck(cc *cobra.Command, runtimeVersion string) error {
	res, err := vercheck.Default().Check(runtimeVersion)
	if err != nil {
		return fmt.Errorf("check %q: %w", runtimeVersion, err)
	}

	slog.Debug("checked runtime version",
		slog.String("token", res.Token),
		slog.Bool("ok", res.OK),
	)

	cc.Println(res.Message())

	return nil
}
