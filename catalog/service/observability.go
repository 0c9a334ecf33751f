package service

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// OperationDurationMetric is recorded for every state-changing operation.
const OperationDurationMetric = "catalog_operation_duration_seconds"

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
	statusError    = "error"

	labelOperation = "operation"
	labelStatus    = "status"

	logAttrOperation  = "operation"
	logAttrError      = "error"
	logAttrDurationMS = "duration_ms"
	logAttrISBN       = "isbn"
	logAttrMemberID   = "member_id"
	logAttrLoanID     = "loan_id"
	logAttrFine       = "fine"
	logAttrDueDate    = "due_date"

	logMsgOperationSucceeded = "operation succeeded"
	logMsgOperationRejected  = "operation rejected"
	logMsgOperationFailed    = "operation failed"
	logMsgOverdueNotice      = "overdue notice"
	logMsgIdempotent         = "operation was already done"
)

// observe logs and measures one operation. Business rule violations count as rejected.
func (s settings) observe(operation string, start time.Time, err error, args ...any) {
	duration := time.Since(start)

	status := statusSuccess
	switch {
	case err == nil:
	case isRejection(err):
		status = statusRejected
	default:
		status = statusError
	}

	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(OperationDurationMetric, duration, map[string]string{
			labelOperation: operation,
			labelStatus:    status,
		})
	}

	if s.logger == nil {
		return
	}

	args = append(args, logAttrOperation, operation, logAttrDurationMS, float64(duration.Microseconds())/1000)

	switch status {
	case statusSuccess:
		s.logger.Info(logMsgOperationSucceeded, args...)
	case statusRejected:
		s.logger.Warn(logMsgOperationRejected, append(args, logAttrError, err.Error())...)
	default:
		s.logger.Error(logMsgOperationFailed, append(args, logAttrError, err.Error())...)
	}
}

func isRejection(err error) bool {
	for _, rejection := range []error{
		core.ErrInvalidInput,
		core.ErrNotFound,
		core.ErrDuplicate,
		core.ErrBookUnavailable,
		core.ErrBookDiscontinued,
		core.ErrLoanLimitReached,
		core.ErrMemberNotActive,
		core.ErrOutstandingFines,
		core.ErrMemberHasActiveLoans,
		core.ErrBookHasActiveLoans,
		core.ErrLoanNotActive,
		core.ErrLoanNotRenewable,
		core.ErrNoFineDue,
		core.ErrInvalidPayment,
	} {
		if errors.Is(err, rejection) {
			return true
		}
	}

	return false
}

// record appends event to the journal, if there is one.
func (s settings) record(ctx context.Context, event core.DomainEvent) error {
	if s.journal == nil {
		return nil
	}

	return s.journal.Record(ctx, event)
}

func (s settings) today() time.Time {
	return core.Day(s.clock())
}
