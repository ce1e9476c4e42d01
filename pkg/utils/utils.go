package utils

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Hyperlink wraps text in an OSC 8 escape so supporting terminals
// (iTerm2, Windows Terminal, kitty) render it as a clickable link.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return fmt.Sprintf("\u001b]8;;%s\u0007%s\u001b]8;;\u0007", url, text)
}

// MakeClickableLink links text to urlValue when urlValue is an http(s) URL.
// An empty text displays the URL itself.
func MakeClickableLink(urlValue, text string) string {
	displayText := text
	if displayText == "" {
		displayText = urlValue
	}
	if !isWebURL(urlValue) {
		return displayText
	}
	return Hyperlink(urlValue, displayText)
}

func isWebURL(urlValue string) bool {
	return strings.HasPrefix(urlValue, "https://") || strings.HasPrefix(urlValue, "http://")
}

// Truncate shortens s to width display cells, ending in "…" when cut.
// Escape sequences are preserved and not counted.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// StripANSI removes escape sequences, including OSC 8 links.
func StripANSI(str string) string {
	return ansi.Strip(str)
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default: // linux, freebsd, openbsd, netbsd
		return "xdg-open", []string{url}
	}
}

// OpenBrowser is a variable so tests and the TUIs can stub it.
var OpenBrowser = func(url string) error {
	cmd, args := browserCommand(runtime.GOOS, url)
	return exec.Command(cmd, args...).Start()
}
