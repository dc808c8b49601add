package service

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrUnknownTask is returned for a task type outside the static catalog.
	ErrUnknownTask = errors.New("unknown task type")

	// ErrRewardUnavailable covers claiming an incomplete or already
	// claimed task.
	ErrRewardUnavailable = errors.New("reward not claimable")

	// ErrLoginRejected means the identity provider refused the code.
	ErrLoginRejected = errors.New("login rejected")
)
