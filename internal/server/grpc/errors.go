package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain sentinels onto gRPC codes. Client-facing messages
// carry the error text; internal failures are logged and masked.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorNoProfile):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrFileTooLarge),
		errors.Is(err, common.ErrFileTypeNotAllowed):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrBlobStore):
		s.logger.Error(ctx, op, "error", err)
		return status.Error(codes.Unavailable, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	s.logger.Error(ctx, op, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
