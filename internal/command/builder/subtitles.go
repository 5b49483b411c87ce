// Package builder assembles yt-dlp command lines.
package builder

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"subgrab/internal/domain/command"
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/logger"
	"subgrab/internal/models"
	"subgrab/internal/parsing"
	"subgrab/internal/validation"
)

// LookPathFunc searches the executable search path, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// SubtitleCommandBuilder builds the yt-dlp argument list for a subtitle-only run.
type SubtitleCommandBuilder struct {
	Opts     *models.Options
	LookPath LookPathFunc
}

// NewSubtitleCommandBuilder returns a builder for o which searches the real PATH.
func NewSubtitleCommandBuilder(o *models.Options) *SubtitleCommandBuilder {
	return &SubtitleCommandBuilder{
		Opts:     o,
		LookPath: exec.LookPath,
	}
}

// OutputTemplate returns the yt-dlp output template for files written on the given date label.
//
// Files land in a per-uploader subdirectory. The title is capped at 180 bytes
// to keep paths within filesystem limits.
func OutputTemplate(dateLabel string) string {
	return command.TemplateUploader + "/" +
		dateLabel + "-" + command.TemplateTitle + " " +
		command.TemplateID + "." + command.TemplateExt
}

// ResolveInvocation turns the raw --yt-dlp-bin value into the leading command tokens.
//
// The bare name "yt-dlp" is used directly when it is on PATH, otherwise it is run
// as a module through the Python interpreter. Anything else is used verbatim.
func (b *SubtitleCommandBuilder) ResolveInvocation(raw string) ([]string, error) {
	parsed, err := parsing.Tokenize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: --yt-dlp-bin: %v", errs.ErrConfiguration, err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: --yt-dlp-bin cannot be empty", errs.ErrConfiguration)
	}

	if len(parsed) == 1 && parsed[0] == command.YTDLP {
		lookPath := b.LookPath
		if lookPath == nil {
			lookPath = exec.LookPath
		}
		if _, err := lookPath(command.YTDLP); err == nil {
			return []string{command.YTDLP}, nil
		}

		python := ""
		if b.Opts != nil {
			python = b.Opts.PythonBin
		}
		if python == "" {
			python = consts.PythonCandidates[0]
		}
		logger.Pl.D(1, "%s not found on PATH, falling back to %s %s %s", command.YTDLP, python, command.RunModule, command.YTDLPModule)
		return []string{python, command.RunModule, command.YTDLPModule}, nil
	}

	return parsed, nil
}

// Build validates the options and returns the full argument list, executable first.
//
// now supplies the date label embedded in output filenames. The cookie file is
// checked before anything is created on disk.
func (b *SubtitleCommandBuilder) Build(now time.Time) ([]string, error) {
	o := b.Opts
	if err := validation.ValidateOptions(o); err != nil {
		return nil, err
	}

	dateLabel := parsing.DateLabel(now)

	cookies, err := parsing.ExpandPath(o.CookiesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConfiguration, err)
	}
	if err := validation.EnsureCookieFile(cookies); err != nil {
		return nil, err
	}

	outputDir, err := parsing.ExpandPath(o.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConfiguration, err)
	}
	if err := validation.EnsureDirectory(outputDir); err != nil {
		return nil, err
	}
	outputTemplate := OutputTemplate(dateLabel)

	cmd, err := b.ResolveInvocation(o.YtDlpBin)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(cmd)+24+len(o.URLs))
	args = append(args, cmd...)
	args = append(args,
		command.SkipVideo,
		command.IgnoreErrors,
		command.Newline,
		command.Paths, outputDir,
		command.Output, outputTemplate,
		command.CookiePath, cookies,
		command.SubLangs, o.SubLangs,
		command.SubFormat, o.SubFormat,
	)

	if o.Mode.WantsManual() {
		args = append(args, command.WriteSubs)
	}
	if o.Mode.WantsAuto() {
		args = append(args, command.WriteAutoSubs)
	}

	if o.ConvertTo != "" && !strings.EqualFold(o.ConvertTo, consts.ConvertNone) {
		args = append(args, command.ConvertSubs, o.ConvertTo)
	}

	if o.NoPlaylist {
		args = append(args, command.NoPlaylist)
	}
	if o.PlaylistItems != "" {
		args = append(args, command.PlaylistItems, o.PlaylistItems)
	}

	extra, err := parsing.TokenizeAll(o.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("%w: --extra-arg: %v", errs.ErrConfiguration, err)
	}
	args = append(args, extra...)

	args = append(args, o.URLs...)

	logger.Pl.D(1, "Built argument list for %d URL(s): %q", len(o.URLs), args)
	return args, nil
}
