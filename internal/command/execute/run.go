package execute

import (
	"context"
	"errors"
	"time"

	"subgrab/internal/command/builder"
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/logger"

	"github.com/alessio/shellescape"
)

// Run builds the command, prints it, and unless dry-running executes it once.
//
// The returned status is 2 when the command could not be built, 127 when it
// could not be launched, and otherwise the child's own exit code.
func Run(ctx context.Context, b *builder.SubtitleCommandBuilder, now time.Time, ex Executor) int {
	args, err := b.Build(now)
	if err != nil {
		logger.Pl.E("%v", err)
		return consts.ExitBuildFailure
	}

	logger.Pl.I("Running: %s", shellescape.QuoteCommand(args))
	if b.Opts.DryRun {
		return consts.ExitSuccess
	}

	code, err := ex.Execute(ctx, args)
	if err != nil {
		if errors.Is(err, errs.ErrLaunchFailure) {
			logger.Pl.E("%v\n%s", err, consts.InstallHint)
			return consts.ExitNotLaunched
		}
		logger.Pl.E("%v", err)
		return consts.ExitBuildFailure
	}

	logger.Pl.D(1, "%s exited with status %d", args[0], code)
	return code
}
