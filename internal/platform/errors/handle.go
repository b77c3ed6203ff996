package errors

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors/i18n"
)

// DefaultLocale is used when the caller did not negotiate a language.
const DefaultLocale = i18n.BaseLocale

// GetCode returns the domain code carried by err, or CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// As extracts the domain error from err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}

// LocalizedMessage renders the user-facing message for err in locale.
func LocalizedMessage(err error, locale string) string {
	domainErr, ok := As(err)
	if !ok {
		return i18n.GetCatalog(locale).Format(string(CodeUnknown), nil)
	}
	return i18n.GetCatalog(locale).Format(string(domainErr.Code), domainErr.Metadata)
}

// HandleError converts err into a gRPC status error.
//
// Domain errors keep their mapped code and carry ErrorInfo plus a localized
// message. Errors that already are gRPC statuses pass through. Context
// cancellation maps to Canceled or DeadlineExceeded. Anything else becomes
// Internal without leaking the cause to the client.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}
	if domainErr, ok := As(err); ok {
		cat := i18n.GetCatalog(locale)
		return domainErr.ToGRPCStatus(cat.Locale(), cat.Format(string(domainErr.Code), domainErr.Metadata))
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	}
	return status.Error(codes.Internal, "internal error")
}

// ReasonFromStatus extracts the ErrorInfo reason attached by ToGRPCStatus.
func ReasonFromStatus(err error) Code {
	st, ok := status.FromError(err)
	if !ok {
		return CodeUnknown
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return Code(info.GetReason())
		}
	}
	return CodeUnknown
}
