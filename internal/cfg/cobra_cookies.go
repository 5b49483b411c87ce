package cfg

import (
	"fmt"

	cfgflags "subgrab/internal/cfg/flags"
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/keys"
	"subgrab/internal/domain/logger"
	"subgrab/internal/parsing"
	"subgrab/internal/utils/browser"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCookieCmds returns the "cookies" command group.
func initCookieCmds(v *viper.Viper, status *int) (*cobra.Command, error) {
	cookiesCmd := &cobra.Command{
		Use:   "cookies",
		Short: "Cookie file commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [URL or domain...]",
		Short: "Write browser cookies for the given sites (default youtube.com) to a cookies.txt file.",
		Long: "Reads cookies from browsers installed on this machine and writes them in the Netscape format yt-dlp expects.\n" +
			"By default the file is written to the --cookies path, so a following subgrab run picks it up.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := exportCookies(v, args); err != nil {
				logger.Pl.E("%v", err)
				*status = consts.ExitBuildFailure
			}
			return nil
		},
	}

	if err := cfgflags.InitCookieExportFlags(exportCmd, v); err != nil {
		return nil, err
	}
	cookiesCmd.AddCommand(exportCmd)
	return cookiesCmd, nil
}

func exportCookies(v *viper.Viper, urls []string) error {
	out := v.GetString(keys.CookieOut)
	if out == "" {
		out = v.GetString(keys.Cookies)
	}
	if out == "" {
		return fmt.Errorf("no output path for cookies, use --%s", keys.CookieOut)
	}
	out, err := parsing.ExpandPath(out)
	if err != nil {
		return err
	}

	n, err := browser.ExportCookies(out, v.GetString(keys.CookieBrowser), urls)
	if err != nil {
		return err
	}
	logger.Pl.I("Wrote %d cookies to %s", n, out)
	return nil
}
