package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lifeweeks/internal/client/session"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	errNoRefreshToken = errors.New("no refresh token")
)

// mapError turns gRPC statuses back into the shared sentinels so callers
// can use errors.Is regardless of transport.
func mapError(err error) error {
	if err == nil || errors.Is(err, session.ErrNoSession) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()

	switch st.Code() {
	case codes.Unavailable:
		if strings.HasPrefix(msg, common.ErrBlobStore.Error()) {
			return wrap(common.ErrBlobStore, msg)
		}
		return wrap(ErrUnavailable, msg)
	case codes.DeadlineExceeded, codes.Canceled:
		return wrap(ErrUnavailable, msg)
	case codes.NotFound:
		if msg == common.ErrorNoProfile.Error() {
			return common.ErrorNoProfile
		}
		return wrap(common.ErrorNotFound, msg)
	case codes.InvalidArgument:
		for _, sentinel := range []error{common.ErrFileTooLarge, common.ErrFileTypeNotAllowed} {
			if strings.HasPrefix(msg, sentinel.Error()) {
				return wrap(sentinel, msg)
			}
		}
		return wrap(common.ErrorValidation, msg)
	case codes.AlreadyExists:
		return wrap(common.ErrorAlreadyExists, msg)
	case codes.Unauthenticated, codes.PermissionDenied:
		for _, sentinel := range []error{common.ErrRefreshTokenExpired, common.ErrTokenExpired} {
			if msg == sentinel.Error() {
				return sentinel
			}
		}
		return wrap(common.ErrorUnauthorized, msg)
	}
	return wrap(common.ErrorInternal, msg)
}

// wrap keeps sentinel matchable without repeating its text in the message.
func wrap(sentinel error, msg string) error {
	prefix := sentinel.Error()
	switch {
	case msg == prefix || msg == "":
		return sentinel
	case strings.HasPrefix(msg, prefix):
		return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(msg, prefix))
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
