package cfgflags

import (
	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/keys"
	"subgrab/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitSubtitleFlags initializes flags selecting which subtitles are fetched and in what format.
func InitSubtitleFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	f.String(keys.Mode, string(models.ModeBoth), "Subtitle source: manual subtitles, auto captions, or both (both, manual, auto)")
	f.String(keys.SubLangs, consts.DefaultSubLangs, "yt-dlp --sub-langs value")
	f.String(keys.SubFormat, consts.DefaultSubFormat, "yt-dlp --sub-format value")
	f.String(keys.ConvertTo, consts.DefaultConvertTo, "Convert subtitle format via --convert-subs, e.g. srt/vtt/ass/lrc")

	return bindAll(v, f, keys.Mode, keys.SubLangs, keys.SubFormat, keys.ConvertTo)
}
