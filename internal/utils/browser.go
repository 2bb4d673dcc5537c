package utils

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrNoBrowser is returned when no browser can be launched from this environment
var ErrNoBrowser = errors.New("no browser available")

var startCommand = func(cmd *exec.Cmd) error {
	return cmd.Start()
}

// OpenBrowser opens an http(s) URL in the default browser (cross-platform)
func OpenBrowser(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http and https links are supported", rawURL)
	}

	if IsRunningInContainer() {
		return fmt.Errorf("%w: running inside a container, open %s manually", ErrNoBrowser, u.String())
	}

	cmd, err := browserCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	return startCommand(cmd)
}

func browserCommand(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", target), nil
	default:
		return nil, fmt.Errorf("%w: unsupported platform %s", ErrNoBrowser, goos)
	}
}
