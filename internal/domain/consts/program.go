// Package consts holds various global, unchanging values.
package consts

// Exit codes.
const (
	ExitSuccess      = 0
	ExitBuildFailure = 2
	ExitNotLaunched  = 127
)

// Subtitle defaults.
const (
	DefaultSubLangs  = "zh-Hans,zh-Hant,zh-CN,zh-TW,zh,en.*"
	DefaultSubFormat = "best"
	DefaultConvertTo = "none"
	ConvertNone      = "none"
)

// Interpreter candidates for running yt-dlp as a module, in order of preference.
var PythonCandidates = [...]string{"python3", "python"}

// Date formats.
const (
	DateLabelFormat = "20060102"
	LogTimeFormat   = "2006-01-02 15:04:05.00 MST"
)

// Program messages.
const (
	CookieHint  = `Provide --cookies <path> or set SUBGRAB_COOKIES; "subgrab cookies export" can write one from a local browser.`
	InstallHint = "Install yt-dlp first: pip install -U yt-dlp"
)

// DefaultCookieDomain is used by cookie export when no URLs are given.
const DefaultCookieDomain = "youtube.com"
