package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email is already registered")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrProfileNotFound     = errors.New("career profile not set up")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrInsightNotFound     = errors.New("industry insight not found")
	ErrCoverLetterNotFound = errors.New("cover letter not found")
)
