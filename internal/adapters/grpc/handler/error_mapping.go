package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidDate),
		errors.Is(err, ledger.ErrInvalidName),
		errors.Is(err, ledger.ErrInvalidEmail),
		errors.Is(err, ledger.ErrInvalidPassword),
		errors.Is(err, ledger.ErrInvalidBalance),
		errors.Is(err, ledger.ErrInvalidID),
		errors.Is(err, ledger.ErrInvalidPageSize),
		errors.Is(err, ledger.ErrInvalidPageToken),
		errors.Is(err, deposit.ErrInvalidType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrDuplicateCompany), errors.Is(err, company.ErrEmailAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, company.ErrCompanyNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
