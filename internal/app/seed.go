package app

import (
	"github.com/five82/backscroll/internal/console"
	"github.com/five82/backscroll/internal/live"
)

// seed fills a fresh console with the startup lines: a greeting, the time
// since start, the locale and the terminal size.
func seed(c *console.Console, clock *live.Clock, size *live.Value[string], getenv func(string) string) {
	c.Log("hello")
	c.Watch("runtime", clock)
	c.Watch("locale", live.NewValue(locale(getenv)))
	c.Watch("size", size)
}

func locale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return "C"
}
