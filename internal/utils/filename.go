package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultAttachmentName replaces names that sanitize to nothing.
const DefaultAttachmentName = "anexo"

const maxAttachmentNameBytes = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes an uploaded attachment name safe to offer back as
// a download name. Path separators, reserved characters and leading dots
// are dropped, whitespace is collapsed and the result is capped at 200
// bytes without splitting a UTF-8 sequence.
func SanitizeFilename(filename string) string {
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = strings.TrimSpace(filename)
	filename = strings.TrimLeft(filename, ". ")

	if len(filename) > maxAttachmentNameBytes {
		cut := maxAttachmentNameBytes
		for cut > 0 && !utf8.RuneStart(filename[cut]) {
			cut--
		}
		filename = strings.TrimSpace(filename[:cut])
	}

	if filename == "" {
		filename = DefaultAttachmentName
	}
	return filename
}

// SanitizeAttachmentName applies SanitizeFilename to an optional name.
// A nil name stays nil.
func SanitizeAttachmentName(name *string) *string {
	if name == nil {
		return nil
	}
	clean := SanitizeFilename(*name)
	return &clean
}
