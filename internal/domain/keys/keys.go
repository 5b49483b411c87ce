// Package keys holds the flag, config file and environment keys used across subgrab.
package keys

// Environment.
const (
	EnvPrefix string = "SUBGRAB"
)

// Program.
const (
	ConfigFile string = "config-file"
	DebugLevel string = "debug-level"
	DryRun     string = "dry-run"
	RunDate    string = "run-date"
)

// Files and directories.
const (
	Cookies     string = "cookies"
	OutputDir   string = "output-dir"
	ProjectRoot string = "project-root"
)

// Subtitles.
const (
	Mode      string = "mode"
	SubLangs  string = "sub-langs"
	SubFormat string = "sub-format"
	ConvertTo string = "convert-to"
)

// External tools.
const (
	YtDlpBin  string = "yt-dlp-bin"
	PythonBin string = "python-bin"
	ExtraArg  string = "extra-arg"
)

// Playlists.
const (
	NoPlaylist    string = "no-playlist"
	PlaylistItems string = "playlist-items"
)

// Cookie export.
const (
	CookieBrowser string = "browser"
	CookieOut     string = "out"
)
