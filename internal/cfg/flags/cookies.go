package cfgflags

import (
	"subgrab/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitCookieExportFlags initializes flags for the cookies export subcommand.
func InitCookieExportFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	f.String(keys.CookieBrowser, "", "Only read cookies from this browser (e.g. firefox, chrome)")
	f.String(keys.CookieOut, "", "Where to write cookies.txt (default: the --cookies path)")

	return bindAll(v, f, keys.CookieBrowser, keys.CookieOut)
}
