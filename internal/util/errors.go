package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrInvalidEnrollCode  = errors.New("invalid admin enrollment code")
)
