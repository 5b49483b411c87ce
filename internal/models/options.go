package models

import (
	"fmt"
	"strings"
)

// SubtitleMode selects which subtitle sources yt-dlp writes.
type SubtitleMode string

const (
	ModeBoth   SubtitleMode = "both"
	ModeManual SubtitleMode = "manual"
	ModeAuto   SubtitleMode = "auto"
)

// SubtitleModes lists the accepted modes.
var SubtitleModes = []SubtitleMode{ModeBoth, ModeManual, ModeAuto}

// ParseSubtitleMode parses s (case-insensitive) into a SubtitleMode.
func ParseSubtitleMode(s string) (SubtitleMode, error) {
	m := SubtitleMode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return "", fmt.Errorf("invalid mode %q (choose from %v)", s, SubtitleModes)
}

// Valid reports whether m is one of the accepted modes.
func (m SubtitleMode) Valid() bool {
	switch m {
	case ModeBoth, ModeManual, ModeAuto:
		return true
	}
	return false
}

// WantsManual reports whether uploaded subtitles should be written.
func (m SubtitleMode) WantsManual() bool {
	return m == ModeBoth || m == ModeManual
}

// WantsAuto reports whether auto-generated captions should be written.
func (m SubtitleMode) WantsAuto() bool {
	return m == ModeBoth || m == ModeAuto
}

// Options holds everything needed to build one yt-dlp invocation.
type Options struct {
	URLs          []string
	CookiesPath   string
	OutputDir     string
	Mode          SubtitleMode
	SubLangs      string
	SubFormat     string
	ConvertTo     string
	YtDlpBin      string
	PythonBin     string
	NoPlaylist    bool
	PlaylistItems string
	ExtraArgs     []string
	DryRun        bool
}
