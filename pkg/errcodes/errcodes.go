package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Calculator configuration.
	InvalidFeeRate       failure.ErrorCode = "InvalidFeeRate"
	InvalidTargetProfits failure.ErrorCode = "InvalidTargetProfits"
	InvalidThresholds    failure.ErrorCode = "InvalidThresholds"
)
