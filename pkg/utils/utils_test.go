package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeClickableLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		url  string
		text string
		want string
	}{
		{name: "github url", url: "https://github.com/golang/go", text: "golang/go", want: "\u001b]8;;https://github.com/golang/go\u0007golang/go\u001b]8;;\u0007"},
		{name: "empty text shows url", url: "https://example.com", want: "\u001b]8;;https://example.com\u0007https://example.com\u001b]8;;\u0007"},
		{name: "non-web url is plain", url: "ftp://example.com", text: "x", want: "x"},
		{name: "empty url", url: "", text: "plain", want: "plain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MakeClickableLink(tc.url, tc.text))
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "golang/go", StripANSI(Hyperlink("https://github.com/golang/go", "golang/go")))
	assert.Equal(t, "red", StripANSI("\u001b[31mred\u001b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "ab…", StripANSI(Truncate("\u001b[1mabcdef\u001b[0m", 3)))
}

func TestBrowserCommand(t *testing.T) {
	t.Parallel()

	cmd, args := browserCommand("darwin", "https://x")
	assert.Equal(t, "open", cmd)
	assert.Equal(t, []string{"https://x"}, args)

	cmd, args = browserCommand("windows", "https://x")
	assert.Equal(t, "rundll32", cmd)
	assert.Equal(t, []string{"url.dll,FileProtocolHandler", "https://x"}, args)

	cmd, _ = browserCommand("linux", "https://x")
	assert.Equal(t, "xdg-open", cmd)
}
