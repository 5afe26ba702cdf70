package exceptions

import (
	"dashboard-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return buildKindedError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return buildKindedError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidUserRole = func(role string) *CustomError {
		return buildKindedError(nil, KindValidation, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidUserRole, role), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildKindedError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return buildKindedError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildKindedError(err, KindRequest, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrBuildMultipartBody = func(err error) *CustomError {
		return buildKindedError(err, KindRequest, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildMultipartBody)
	}

	// Remote backend
	ErrCreateHTTPRequest = func(err error, resource string) *CustomError {
		return buildKindedError(err, KindRequest, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s for %s", constvars.ErrDevCreateHTTPRequest, resource))
	}
	ErrSendHTTPRequest = func(err error, resource string) *CustomError {
		return buildKindedError(err, KindTransport, constvars.StatusBadGateway, constvars.ErrClientNetworkError, fmt.Sprintf(constvars.ErrDevBackendUnreachable, resource))
	}
	ErrBackendTimeout = func(err error, resource string) *CustomError {
		return buildKindedError(err, KindTimeout, constvars.StatusGatewayTimeout, constvars.ErrClientRequestTimedOut, fmt.Sprintf(constvars.ErrDevBackendTimeout, resource))
	}
	ErrBackendResponse = func(statusCode int, message, resource string) *CustomError {
		if message == "" {
			message = fmt.Sprintf(constvars.ErrClientRequestFailedWithStatus, statusCode)
		}
		httpStatus := statusCode
		if httpStatus < constvars.StatusBadRequest {
			httpStatus = constvars.StatusBadGateway
		}
		return buildKindedError(nil, KindBackend, httpStatus, message, fmt.Sprintf(constvars.ErrDevBackendRespondedFailure, resource, statusCode))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return buildKindedError(err, KindDecode, constvars.StatusBadGateway, constvars.ErrClientInvalidBackendResponse, fmt.Sprintf(constvars.ErrDevBackendDecodeResponse, resource))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisAddToSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSAdd)
	}
	ErrRedisRemoveFromSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSRem)
	}
	ErrRedisExpire = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisExpire)
	}
	ErrRedisAddToSortedSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisZAdd)
	}
	ErrRedisGetSortedSetMembers = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisZRange)
	}
	ErrRedisRemoveFromSortedSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisZRem)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrReportExportInProgress = func() *CustomError {
		return buildKindedError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientReportExportInProgress, constvars.ErrDevReportLockNotAcquired)
	}
	ErrAttendancePageLimit = func(maxPages int) *CustomError {
		return buildKindedError(nil, KindInternal, constvars.StatusUnprocessableEntity, constvars.ErrClientTooManyAttendanceEntries, fmt.Sprintf(constvars.ErrDevAttendancePageLimit, maxPages))
	}
	ErrRedisGetSetMembers = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSMembers)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, exchangeName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchangeName))
	}

	// Report
	ErrRenderReport = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRenderReport)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
