// Package command holds the yt-dlp flag vocabulary.
package command

// Invocation.
const (
	YTDLP       = "yt-dlp"
	YTDLPModule = "yt_dlp"
	RunModule   = "-m"
)

// General.
const (
	CookiePath   = "--cookies"
	IgnoreErrors = "--ignore-errors"
	Newline      = "--newline"
	Output       = "--output"
	Paths        = "--paths"
	SkipVideo    = "--skip-download"
)

// Subtitles.
const (
	ConvertSubs   = "--convert-subs"
	SubFormat     = "--sub-format"
	SubLangs      = "--sub-langs"
	WriteAutoSubs = "--write-auto-subs"
	WriteSubs     = "--write-subs"
)

// Playlists.
const (
	NoPlaylist    = "--no-playlist"
	PlaylistItems = "--playlist-items"
)

// Output template placeholders, resolved by yt-dlp.
const (
	TemplateUploader = "%(uploader|unknown)s"
	TemplateTitle    = "%(title).180B"
	TemplateID       = "[%(id)s]"
	TemplateExt      = "%(ext)s"
)
