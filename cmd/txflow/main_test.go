package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gabapcia/txflow/internal/handlers/cli"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		err := fmt.Errorf("%w: 0xabc", cli.ErrStatusUnknown)
		assert.Equal(t, exitStatusUnknown, exitCode(err))
	})

	t.Run("any other failure", func(t *testing.T) {
		assert.Equal(t, exitFailure, exitCode(errors.New("dial tcp: connection refused")))
	})
}
