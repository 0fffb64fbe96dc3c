package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
)

func handleError(err error) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "case not found")
	case errors.Is(err, model.ErrVersionConflict):
		return status.Error(codes.Aborted, "case was modified concurrently, retry the request")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
