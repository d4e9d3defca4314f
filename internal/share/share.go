// Package share formats verses for the clipboard and for outbound social
// links.
package share

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"

	"apocalipsis/internal/scripture"
)

// Platform identifies a share target.
type Platform string

const (
	WhatsApp  Platform = "whatsapp"
	Facebook  Platform = "facebook"
	Twitter   Platform = "twitter"
	Instagram Platform = "instagram"
)

// AppLocation stands in for the page URL the original app appended to
// shares.
const AppLocation = "https://apocalipsis.app"

// writeAll is a package-level variable so tests can intercept clipboard
// writes.
var writeAll = clipboard.WriteAll

// FormatVerse renders the share string: `"<text>" - <reference>`.
func FormatVerse(v scripture.Verse) string {
	return fmt.Sprintf("%q - %s", v.Text, v.Reference)
}

// Copy writes the formatted verse to the system clipboard.
func Copy(v scripture.Verse) error {
	return writeAll(FormatVerse(v))
}

// URL builds the outbound link for a platform. Instagram has no share URL;
// callers fall back to Copy and show an instruction instead.
func URL(platform Platform, v scripture.Verse) (string, bool) {
	text := FormatVerse(v)
	switch platform {
	case WhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(text+" "+AppLocation), true
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(AppLocation) +
			"&quote=" + url.QueryEscape(text), true
	case Twitter:
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) +
			"&url=" + url.QueryEscape(AppLocation), true
	default:
		return "", false
	}
}
