package cfgflags

import (
	"subgrab/internal/domain/keys"
	"subgrab/internal/domain/paths"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitProgramFlags initializes flags shared by every subcommand, e.g. logging level and the cookies file.
func InitProgramFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	pf := rootCmd.PersistentFlags()

	// Config file
	pf.String(keys.ConfigFile, "", "Config file (yaml, toml or json) supplying flag defaults")

	// Debug level
	pf.Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")

	// Cookies
	pf.String(keys.Cookies, paths.DefaultCookiesPath(), "Path to a Netscape cookies.txt file")

	return bindAll(v, pf, keys.ConfigFile, keys.DebugLevel, keys.Cookies)
}
