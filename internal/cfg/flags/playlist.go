package cfgflags

import (
	"subgrab/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitPlaylistFlags initializes flags restricting playlist handling.
func InitPlaylistFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	f.Bool(keys.NoPlaylist, false, "Only process a single video even if the URL points to a playlist")
	f.String(keys.PlaylistItems, "", "Only process selected playlist items, e.g. 1,3,5-8")

	return bindAll(v, f, keys.NoPlaylist, keys.PlaylistItems)
}
