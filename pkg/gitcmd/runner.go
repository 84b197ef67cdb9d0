// Package gitcmd runs the external git tool and supervises its diagnostic
// output. Git's stderr is the only stream inspected: it is passed through
// the console filter and forwarded to the log, with a timer-bounded wait so
// that a long-running silent command cannot postpone a pending suppression
// flush.
package gitcmd

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/cperrin88/gitmirror/pkg/console"
)

//go:generate mockgen -destination=./mocks/runner.go -package=mocks . Runner

// Runner executes one git command line to completion.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// readBufSize is the stderr read block size.
const readBufSize = 4096

// Supervisor runs git with stdout discarded and stderr streamed through a
// console.Filter into the log.
type Supervisor struct {
	log     *console.Log
	gitPath string
}

// NewSupervisor creates a Supervisor writing to log.
func NewSupervisor(log *console.Log) *Supervisor {
	return &Supervisor{log: log, gitPath: "git"}
}

// Run executes git with the given arguments. Stdin reads as empty, stdout
// is discarded, and stderr is filtered and forwarded to the log as it
// arrives. A non-zero exit or a failure to launch returns a *CommandError.
func (s *Supervisor) Run(ctx context.Context, args ...string) error {
	cmdline := append([]string{s.gitPath}, args...)

	cmd := exec.CommandContext(ctx, s.gitPath, args...)
	cmd.Stdout = io.Discard

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &CommandError{Args: cmdline, ExitCode: -1, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &CommandError{Args: cmdline, ExitCode: -1, Err: err}
	}

	s.pump(stderr)

	if err := cmd.Wait(); err != nil {
		return &CommandError{Args: cmdline, ExitCode: cmd.ProcessState.ExitCode(), Err: err}
	}
	return nil
}

// pump forwards stderr to the log until the stream closes. The wait for
// data is bounded by the log's SelectTimeout; when it fires with no data,
// an empty write gives the log its chance to notice an expired suppression
// deadline and flush, even while the child stays silent.
func (s *Supervisor) pump(stderr io.Reader) {
	filter := console.NewFilter(s.log.Tag())

	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, readBufSize)
		for {
			n, err := stderr.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				chunks <- chunk
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		var timeout <-chan time.Time
		var timer *time.Timer
		if d, ok := s.log.SelectTimeout(); ok {
			timer = time.NewTimer(d)
			timeout = timer.C
		}

		select {
		case chunk, ok := <-chunks:
			if timer != nil {
				timer.Stop()
			}
			if !ok {
				s.log.Write(string(filter.Flush()))
				return
			}
			s.log.Write(string(filter.Apply(chunk)))
		case <-timeout:
			s.log.Write("")
		}
	}
}
