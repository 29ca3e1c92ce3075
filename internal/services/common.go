package services

import (
	"go.uber.org/zap"
	"wanderwise/pkg/utils"
)

// dbError logs an unexpected repository failure and hides it behind ErrDatabaseError.
func dbError(log *zap.Logger, op string, err error) error {
	log.Error("repository failure", zap.String("op", op), zap.Error(err))
	return utils.ErrDatabaseError
}

func validatePaging(page, pageSize int) error {
	return utils.ValidatePaging(page, pageSize)
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
