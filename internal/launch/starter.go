package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrStarterNotFound reports that the starter executable does not exist
// at its configured path.
var ErrStarterNotFound = errors.New("could not locate 1C starter app")

// ExecStarter launches the starter executable at Path as a detached
// process. Fire-and-forget: the spawned process is released immediately
// and never waited on.
type ExecStarter struct {
	Path string
}

// NewExecStarter returns an ExecStarter for path, falling back to the
// platform's default install location when path is empty.
func NewExecStarter(path string) ExecStarter {
	if path == "" {
		path = defaultStarterPath
	}
	return ExecStarter{Path: path}
}

func (s ExecStarter) Launch(mode, flag, arg string) error {
	if _, err := os.Stat(s.Path); err != nil {
		return fmt.Errorf("%w: '%s'", ErrStarterNotFound, s.Path)
	}

	cmd := exec.Command(s.Path, mode, flag, arg)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn starter: %w", err)
	}
	return cmd.Process.Release()
}
