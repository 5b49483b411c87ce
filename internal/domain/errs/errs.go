// Package errs holds the error taxonomy surfaced to the user.
package errs

import "errors"

var (
	// ErrConfiguration covers bad option values, such as an empty --yt-dlp-bin or unbalanced quotes.
	ErrConfiguration = errors.New("configuration error")
	// ErrMissingCookieFile means the cookies file does not exist.
	ErrMissingCookieFile = errors.New("cookie file not found")
	// ErrFilesystem means the output directory could not be created.
	ErrFilesystem = errors.New("filesystem error")
	// ErrLaunchFailure means the resolved executable could not be started.
	ErrLaunchFailure = errors.New("unable to run yt-dlp command")
)
