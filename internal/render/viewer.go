package render

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// ViewerCommand returns the command that opens path in the desktop's default
// viewer on goos.
func ViewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open shows each file in the system viewer.
func Open(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		name, args := ViewerCommand(runtime.GOOS, p)
		if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
			return fmt.Errorf("render: open %s with %s: %w", p, name, err)
		}
	}
	return nil
}
