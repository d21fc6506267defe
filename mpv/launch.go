package mpv

import (
	"os/exec"

	"github.com/user/rugby-analysis-cli/deps"
)

// Launch starts mpv on the given target with the IPC socket enabled. The
// target may be a local file or a video URL; URLs are resolved by mpv
// through yt-dlp. It checks that mpv is installed first and returns an
// error with an install link if not. The returned *exec.Cmd can be used
// for cleanup.
func Launch(target string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	cmd := exec.Command("mpv",
		"--input-ipc-server="+DefaultSocketPath,
		"--force-window=yes",
		target,
	)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
