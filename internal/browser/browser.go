// Package browser opens links with the platform's default handler.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL outside the terminal.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// ErrUnsupportedPlatform is returned when no opener command is known for GOOS.
var ErrUnsupportedPlatform = errors.New("no link opener for this platform")

// ExecOpener runs the platform opener command (xdg-open, open, rundll32).
type ExecOpener struct {
	GOOS string // defaults to runtime.GOOS
}

// Ensure ExecOpener implements Opener.
var _ Opener = (*ExecOpener)(nil)

// Open starts the opener and waits for it to exit.
func (o *ExecOpener) Open(ctx context.Context, url string) error {
	name, args, err := Command(o.goos(), url)
	if err != nil {
		return err
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s %s: %w: %s", name, url, err, out)
		}
		return fmt.Errorf("%s %s: %w", name, url, err)
	}
	return nil
}

func (o *ExecOpener) goos() string {
	if o == nil || o.GOOS == "" {
		return runtime.GOOS
	}
	return o.GOOS
}

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
