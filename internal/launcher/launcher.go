package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("opening URLs is not supported on this platform")

// Launcher opens a URL outside this program.
type Launcher interface {
	Open(url string) error
}

// Func adapts a plain function to Launcher.
type Func func(url string) error

// Open calls f(url).
func (f Func) Open(url string) error {
	return f(url)
}

// Browser opens URLs in the system default browser. The browser runs as its
// own process, so the page gets no opener or referrer from this program.
type Browser struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// NewBrowser returns a Browser for the current OS.
func NewBrowser() *Browser {
	return &Browser{
		goos:  runtime.GOOS,
		start: startDetached,
	}
}

// startDetached starts cmd and reaps it in the background once it exits.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Open starts the platform opener without waiting for it to exit.
func (b *Browser) Open(url string) error {
	cmd, err := command(b.goos, url)
	if err != nil {
		return err
	}
	if err := b.start(cmd); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// command builds the opener invocation for goos.
func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}
