// Package dirstack provides a pushd/popd style directory stack over the
// process working directory.
//
// A Stack is an explicit object owned by the caller, not package state.
// The working directory is process-wide, so use one Stack from one
// goroutine at a time; the internal mutex only keeps individual operations
// atomic.
package dirstack

import (
	"errors"
	"os"
	"sync"
)

// ErrEmptyStack is returned by Popd when there is nothing to pop.
var ErrEmptyStack = errors.New("dirstack: empty stack")

type Stack struct {
	mu   sync.Mutex
	dirs []string
}

func New() *Stack {
	return &Stack{}
}

// Pushd changes into dir and records the previous working directory on the
// stack.
func (s *Stack) Pushd(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}

	s.dirs = append(s.dirs, cur)
	return nil
}

// Popd changes back into the most recently pushed directory and returns it.
func (s *Stack) Popd() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dirs) == 0 {
		return "", ErrEmptyStack
	}

	top := s.dirs[len(s.dirs)-1]
	if err := os.Chdir(top); err != nil {
		return "", err
	}

	s.dirs = s.dirs[:len(s.dirs)-1]
	return top, nil
}

// Cd changes the working directory without touching the stack.
func (s *Stack) Cd(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.Chdir(dir)
}

// Current returns the process working directory.
func (s *Stack) Current() (string, error) {
	return os.Getwd()
}

// Depth returns the number of directories on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirs)
}
