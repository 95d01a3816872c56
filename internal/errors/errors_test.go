package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentNamesParams(t *testing.T) {
	err := InvalidArgument("invalid parameters", "alpha", "beta")

	assert.Equal(t, "invalid parameters (alpha, beta)", err.Error())
	assert.Equal(t, CodeInvalidArgument, GetCode(err))
	assert.Equal(t, []string{"alpha", "beta"}, GetParams(err))
	assert.True(t, IsInvalidArgument(err))
	assert.False(t, IsNotSupported(err))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"invalid argument", InvalidArgument("bad max", "max"), IsInvalidArgument},
		{"not supported", NotSupported("no closed form"), IsNotSupported},
		{"null reference", NullReference("generator"), IsNullReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, tt.check(wrapped))
			assert.True(t, tt.check(Wrap(tt.err, "context")))
		})
	}
}

func TestWrapPlainError(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, "while sampling")

	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "while sampling: boom", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))
	assert.True(t, IsAppError(ConfigInvalid("x")))
}
