package service

import "errors"

var (
	// ErrWeeksAheadRange повертається, коли горизонт генерації поза межами [1, 52]
	ErrWeeksAheadRange = errors.New("weeksAhead must be between 1 and 52")

	// ErrDateRange повертається для некоректного або занадто широкого періоду сітки
	ErrDateRange = errors.New("invalid date range")
)
