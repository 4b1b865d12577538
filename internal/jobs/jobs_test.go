package jobs

import (
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func startSh(t *testing.T, script string) *Job {
	t.Helper()

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available:", err)
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	require.NoError(t, err)
	defer devNull.Close()

	args := []string{"sh", "-c", script}
	pid, err := syscall.ForkExec(sh, args, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{devNull.Fd(), devNull.Fd(), devNull.Fd()},
	})
	require.NoError(t, err)

	return New(pid, args)
}

func TestWaitExited(t *testing.T) {
	job := startSh(t, "exit 7")
	assert.Equal(t, Running, job.State)
	assert.Equal(t, -1, job.ExitCode())

	require.NoError(t, job.Wait())

	assert.Equal(t, Exited, job.State)
	assert.Equal(t, 7, job.ExitCode())
	assert.Equal(t, []string{"sh", "-c", "exit 7"}, job.CmdArgs)
}

func TestWaitSignaled(t *testing.T) {
	job := startSh(t, "kill -TERM $$")

	require.NoError(t, job.Wait())

	assert.Equal(t, Signaled, job.State)
	assert.Equal(t, unix.SIGTERM, job.Status.Signal())
	assert.Equal(t, -1, job.ExitCode())
}

func TestWaitSkipsStop(t *testing.T) {
	job := startSh(t, "kill -STOP $$; exit 3")

	done := make(chan error, 1)
	go func() { done <- job.Wait() }()

	// SIGCONT is harmless if the child has not stopped yet.
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			assert.Equal(t, 3, job.ExitCode())
			return
		default:
			_ = unix.Kill(job.Pid, unix.SIGCONT)
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func TestWaitUnknownPid(t *testing.T) {
	job := New(os.Getpid(), []string{"self"})

	err := job.Wait()

	assert.ErrorIs(t, err, unix.ECHILD)
	assert.Equal(t, Running, job.State)
}
