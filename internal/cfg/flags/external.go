package cfgflags

import (
	"subgrab/internal/domain/command"
	"subgrab/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitExternalFlags initializes flags describing how yt-dlp is invoked.
func InitExternalFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	f.String(keys.YtDlpBin, command.YTDLP, "yt-dlp binary or command (may include wrapper arguments)")
	f.String(keys.PythonBin, "", "Python interpreter used to run yt-dlp as a module when it is not on PATH (default: python3 or python)")

	// StringArray keeps commas inside values intact
	f.StringArray(keys.ExtraArg, nil, `Extra raw yt-dlp argument (repeatable), e.g. --extra-arg "--proxy http://127.0.0.1:7890"`)

	return bindAll(v, f, keys.YtDlpBin, keys.PythonBin, keys.ExtraArg)
}

// ExtraArgs returns the --extra-arg values, falling back to the config file list when the flag was not given.
func ExtraArgs(cmd *cobra.Command, v *viper.Viper) ([]string, error) {
	if cmd.Flags().Changed(keys.ExtraArg) {
		return cmd.Flags().GetStringArray(keys.ExtraArg)
	}
	if v.InConfig(keys.ExtraArg) {
		return v.GetStringSlice(keys.ExtraArg), nil
	}
	return nil, nil
}
