package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		kind    ErrorKind
		message string
		status  int
	}{
		{KindValidation, MessageValidation, http.StatusBadRequest},
		{KindNotFound, MessageNotFound, http.StatusNotFound},
		{KindTransport, MessageTransport, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := newLookupError(tt.kind, cause)

			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.status, err.HTTPStatus())
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), cause.Error())

			wrapped := fmt.Errorf("handler: %w", err)
			assert.Equal(t, tt.kind, KindOf(wrapped))
		})
	}

	assert.Equal(t, ErrorKind(0), KindOf(cause))
	assert.False(t, IsTransport(nil))
	assert.Equal(t, "validation lookup error: "+MessageValidation, (&LookupError{
		Kind:    KindValidation,
		Message: MessageValidation,
	}).Error())
}
