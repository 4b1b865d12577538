// Package execute decides how a command line runs and starts external
// programs.
package execute

import (
	"errors"
	"log"
	"os"
	"os/exec"
	"syscall"

	"minishell/internal/jobs"
)

// ForkExecer runs one external program to completion.
type ForkExecer interface {
	// Launch returns the finished job, or nil if no child ran.
	Launch(cmdArgs []string) *jobs.Job
}

// Launcher forks and execs programs found on PATH. The child gets the
// launcher's standard streams and environment.
type Launcher struct {
	Stdin, Stdout, Stderr *os.File
	// Environ defaults to os.Environ.
	Environ func() []string
	Log     *log.Logger
}

// NewLauncher returns a launcher on the process's own streams.
func NewLauncher(logger *log.Logger) *Launcher {
	return &Launcher{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
		Log:     logger,
	}
}

// Launch reports every failure itself: program not found, fork or exec
// failure, or a failed wait.
func (l *Launcher) Launch(cmdArgs []string) *jobs.Job {
	binary, err := exec.LookPath(cmdArgs[0])
	if errors.Is(err, exec.ErrDot) {
		// Relative PATH entries are searched the way execvp does.
		err = nil
	}
	if err != nil {
		l.Log.Printf("%s: %v", cmdArgs[0], err)
		return nil
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	// An exec failure in the child is passed back here; the child exits
	// without running any shell code.
	pid, err := syscall.ForkExec(binary, cmdArgs, &syscall.ProcAttr{
		Env:   environ(),
		Files: []uintptr{l.Stdin.Fd(), l.Stdout.Fd(), l.Stderr.Fd()},
	})
	if err != nil {
		l.Log.Printf("%s: %v", cmdArgs[0], err)
		return nil
	}

	job := jobs.New(pid, cmdArgs)
	if err := job.Wait(); err != nil {
		l.Log.Printf("%s: %v", cmdArgs[0], err)
	}

	return job
}

var _ ForkExecer = (*Launcher)(nil)
