package service

import "github.com/ricirt/notification-pattern/internal/domain"

// Errors reported by OperationService.
var (
	DateGreaterThanToday = domain.NewError("Service.GreaterThanToday", "Operation date greater than today")
	InvalidOperation     = domain.NewError("Service.InvalidOperation", "Invalid operation")
)

// Warnings reported by OperationService.
var (
	DateLessThanToday = domain.NewWarning("Service.DateLessThanToday", "Operation date less than today")
)
