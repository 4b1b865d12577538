package jobs

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

type State int

const (
	Running State = iota
	Exited
	Signaled
)

// Job is a child process started by the shell.
type Job struct {
	Pid     int
	CmdArgs []string
	State   State
	Status  unix.WaitStatus
}

func New(pid int, cmdArgs []string) *Job {
	return &Job{Pid: pid, CmdArgs: cmdArgs, State: Running}
}

// Wait blocks until this job's process exits or is killed by a signal.
// Only the job's own pid is reaped. Stop notifications and interrupted
// waits are retried.
func (j *Job) Wait() error {
	for {
		var ws unix.WaitStatus

		_, err := unix.Wait4(j.Pid, &ws, unix.WUNTRACED, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return fmt.Errorf("wait %d: %w", j.Pid, err)
		}

		j.Status = ws
		switch {
		case ws.Exited():
			j.State = Exited
			return nil
		case ws.Signaled():
			j.State = Signaled
			return nil
		}
	}
}

// ExitCode is the process exit status, or -1 if it has not exited normally.
func (j *Job) ExitCode() int {
	if j.State != Exited {
		return -1
	}
	return j.Status.ExitStatus()
}
