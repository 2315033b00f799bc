package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/dmitrijs2005/sharedlists/internal/server/validation"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status. Unknown errors become
// Internal without leaking their text.
func toStatus(err error) error {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		return validationStatus(verr)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidAccessToken):
		return status.Error(codes.Unauthenticated, "invalid access token")
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return status.Error(codes.Unauthenticated, "invalid refresh token")
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAlreadyMember):
		return status.Error(codes.AlreadyExists, "already a member")
	case errors.Is(err, common.ErrTooManyLoginAttempts):
		return status.Error(codes.ResourceExhausted, "too many login attempts")
	case errors.Is(err, common.ErrUnavailable):
		return status.Error(codes.Unavailable, "service unavailable")
	}
	return status.Error(codes.Internal, "internal error")
}

func validationStatus(verr *validation.Errors) error {
	st := status.New(codes.InvalidArgument, "validation failed")

	br := &errdetails.BadRequest{}
	for _, f := range verr.Fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Code,
		})
	}

	withDetails, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func validationError(field string) error {
	return validation.Single(field, validation.CodeInvalidFormat, nil)
}
