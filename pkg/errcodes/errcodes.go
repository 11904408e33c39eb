package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	DealNotFound         failure.ErrorCode = "DealNotFound"
	DealAlreadyPublished failure.ErrorCode = "DealAlreadyPublished"
	InvalidDealID        failure.ErrorCode = "InvalidDealID"
	InvalidDealInputs    failure.ErrorCode = "InvalidDealInputs"
	InvalidSweepVariable failure.ErrorCode = "InvalidSweepVariable"
	InvalidMetric        failure.ErrorCode = "InvalidMetric"
	InvalidUserID        failure.ErrorCode = "InvalidUserID"
)
