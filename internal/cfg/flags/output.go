package cfgflags

import (
	"subgrab/internal/domain/keys"
	"subgrab/internal/domain/paths"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitOutputFlags initializes flags controlling where files go and whether anything runs.
func InitOutputFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	f.String(keys.OutputDir, "", "Directory to store subtitle files (default: <project-root>/outputs/YYYY/MM/DD/subtitles)")
	f.String(keys.ProjectRoot, paths.DefaultProjectRoot(), "Root of the default outputs/ tree")
	f.String(keys.RunDate, "", "Date used for the default output directory and filename label (default: now)")
	f.Bool(keys.DryRun, false, "Print the final yt-dlp command without running it")

	return bindAll(v, f, keys.OutputDir, keys.ProjectRoot, keys.RunDate, keys.DryRun)
}
