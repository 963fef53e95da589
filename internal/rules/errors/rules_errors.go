package ruleserrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusBadRequest,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not pending",
		http.StatusBadRequest,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"employees cannot decide their own leave requests",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requesting employee can cancel a leave request",
		http.StatusForbidden,
	)
	ErrCyclicHierarchy = apperror.New(
		apperror.CodeInvalidInput,
		"manager assignment would create a cycle in the reporting chain",
		http.StatusBadRequest,
	)
)
