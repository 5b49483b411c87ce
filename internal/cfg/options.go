package cfg

import (
	"fmt"
	"time"

	cfgflags "subgrab/internal/cfg/flags"
	"subgrab/internal/command/builder"
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/keys"
	"subgrab/internal/domain/logger"
	"subgrab/internal/domain/paths"
	"subgrab/internal/models"
	"subgrab/internal/parsing"
	"subgrab/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildOptions resolves flags, environment, config file and clock-derived defaults into Options.
//
// The returned time is the run time: the program start time unless --run-date pins it.
func buildOptions(cmd *cobra.Command, v *viper.Viper, p Program, urls []string) (*models.Options, time.Time, error) {
	runTime, err := resolveRunTime(v, p.StartTime)
	if err != nil {
		return nil, time.Time{}, err
	}

	mode, err := models.ParseSubtitleMode(v.GetString(keys.Mode))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", errs.ErrConfiguration, err)
	}

	extra, err := cfgflags.ExtraArgs(cmd, v)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", errs.ErrConfiguration, err)
	}

	outputDir := v.GetString(keys.OutputDir)
	if outputDir == "" {
		root := v.GetString(keys.ProjectRoot)
		if root == "" {
			root = paths.DefaultProjectRoot()
		}
		outputDir = paths.DefaultOutputDir(root, runTime)
	}

	cookies := v.GetString(keys.Cookies)
	if cookies == "" {
		cookies = paths.DefaultCookiesPath()
	}

	pythonBin := v.GetString(keys.PythonBin)
	if pythonBin == "" {
		pythonBin = defaultPython(p.LookPath)
	}

	opts := &models.Options{
		URLs:          append([]string(nil), urls...),
		CookiesPath:   cookies,
		OutputDir:     outputDir,
		Mode:          mode,
		SubLangs:      v.GetString(keys.SubLangs),
		SubFormat:     v.GetString(keys.SubFormat),
		ConvertTo:     v.GetString(keys.ConvertTo),
		YtDlpBin:      v.GetString(keys.YtDlpBin),
		PythonBin:     pythonBin,
		NoPlaylist:    v.GetBool(keys.NoPlaylist),
		PlaylistItems: v.GetString(keys.PlaylistItems),
		ExtraArgs:     extra,
		DryRun:        v.GetBool(keys.DryRun),
	}
	if err := validation.ValidateOptions(opts); err != nil {
		return nil, time.Time{}, err
	}

	logger.Pl.D(2, "Resolved options: %+v", *opts)
	return opts, runTime, nil
}

// resolveRunTime returns the --run-date value if given, else start.
func resolveRunTime(v *viper.Viper, start time.Time) (time.Time, error) {
	raw := v.GetString(keys.RunDate)
	if raw == "" {
		return start, nil
	}
	t, err := parsing.ParseRunDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s: %v", errs.ErrConfiguration, keys.RunDate, err)
	}
	return t, nil
}

// defaultPython returns the first interpreter candidate found on PATH.
func defaultPython(lookPath builder.LookPathFunc) string {
	if lookPath == nil {
		return consts.PythonCandidates[0]
	}
	for _, c := range consts.PythonCandidates {
		if _, err := lookPath(c); err == nil {
			return c
		}
	}
	return consts.PythonCandidates[0]
}
