// Package browser opens URLs in the user's browser, used by the help
// overlay to reach the Grably admin docs.
package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the default browser at url. The BROWSER environment
// variable, when set, wins over the platform default.
func Open(url string) error {
	if b := os.Getenv("BROWSER"); b != "" {
		return exec.Command(b, url).Start()
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	default:
		return fmt.Errorf("unsupported platform %q", runtime.GOOS)
	}
}
