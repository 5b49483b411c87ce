// Package cfg provides configuration and command-line interface setup for subgrab.
package cfg

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	cfgflags "subgrab/internal/cfg/flags"
	"subgrab/internal/command/builder"
	"subgrab/internal/command/execute"
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/keys"
	"subgrab/internal/domain/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Program holds what a single CLI invocation needs besides its arguments.
//
// Zero values fall back to the real clock, PATH, process execution and standard streams.
type Program struct {
	StartTime time.Time
	Executor  execute.Executor
	LookPath  builder.LookPathFunc
	Stdout    io.Writer
	Stderr    io.Writer
}

// Execute runs the subgrab CLI with args and returns the process exit status.
func Execute(ctx context.Context, p Program, args []string) int {
	p = p.withDefaults()
	logger.Pl = logger.NewProgramLogger(p.Stdout, p.Stderr, 0)

	status := consts.ExitSuccess
	rootCmd, err := InitCommands(p, &status)
	if err != nil {
		logger.Pl.E("failed to initialize commands: %v", err)
		return consts.ExitBuildFailure
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(p.Stdout)
	rootCmd.SetErr(p.Stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Pl.E("%v", err)
		return consts.ExitBuildFailure
	}
	return status
}

func (p Program) withDefaults() Program {
	if p.StartTime.IsZero() {
		p.StartTime = time.Now()
	}
	if p.Executor == nil {
		p.Executor = execute.ProcessExecutor{}
	}
	if p.LookPath == nil {
		p.LookPath = exec.LookPath
	}
	if p.Stdout == nil {
		p.Stdout = os.Stdout
	}
	if p.Stderr == nil {
		p.Stderr = os.Stderr
	}
	return p
}

// InitCommands builds the root command and its subcommands, each bound to a fresh Viper instance.
//
// The root command writes the yt-dlp exit status (or a locally synthesized one) into status.
func InitCommands(p Program, status *int) (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvPrefix(keys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "sub-langs" -> SUBGRAB_SUB_LANGS
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "subgrab [flags] URL...",
		Short:         "Download subtitle files for video URLs using yt-dlp.",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Pl.SetLevel(v.GetInt(keys.DebugLevel))
			if v.IsSet(keys.ConfigFile) && v.GetString(keys.ConfigFile) != "" {
				if err := loadConfigFile(v, v.GetString(keys.ConfigFile)); err != nil {
					return err
				}
				// Config may change the level
				logger.Pl.SetLevel(v.GetInt(keys.DebugLevel))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			*status = runSubtitles(cmd.Context(), cmd, v, p, args)
			return nil
		},
	}

	if err := cfgflags.InitProgramFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitSubtitleFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitOutputFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitPlaylistFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitExternalFlags(rootCmd, v); err != nil {
		return nil, err
	}

	cookiesCmd, err := initCookieCmds(v, status)
	if err != nil {
		return nil, err
	}
	rootCmd.AddCommand(cookiesCmd)

	return rootCmd, nil
}

// runSubtitles resolves options for urls and hands them to the execute pipeline.
func runSubtitles(ctx context.Context, cmd *cobra.Command, v *viper.Viper, p Program, urls []string) int {
	opts, runTime, err := buildOptions(cmd, v, p, urls)
	if err != nil {
		logger.Pl.E("%v", err)
		return consts.ExitBuildFailure
	}
	logger.Pl.D(1, "subgrab started at: %v", p.StartTime.Format(consts.LogTimeFormat))

	b := builder.NewSubtitleCommandBuilder(opts)
	b.LookPath = p.LookPath
	return execute.Run(ctx, b, runTime, p.Executor)
}
