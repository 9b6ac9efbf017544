package chain

import "os/exec"

// ExecRunner runs candidates with os/exec. Standard streams are left
// unattached so child output goes to the null device. The call blocks
// until the process exits; there is no timeout or abort hook, so a hung
// player blocks the caller until it terminates.
type ExecRunner struct{}

func (ExecRunner) Run(exe string, args []string) error {
	return exec.Command(exe, args...).Run()
}
