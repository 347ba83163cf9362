package service

import (
	"net/http"

	apperrors "github.com/placement-portal/api/pkg/util"
)

var (
	ErrMissingRegisterFields = apperrors.NewMissingField("Missing required fields")
	ErrMissingLoginFields    = apperrors.NewMissingField("Missing fields")
	ErrInvalidRole           = apperrors.NewValidationError("role must be one of: student, tpo")
	ErrDuplicateEmail        = apperrors.NewDomainError(apperrors.CodeDuplicateEmail, "Email already registered", http.StatusBadRequest)
	ErrInvalidCredentials    = apperrors.NewDomainError(apperrors.CodeInvalidCredentials, "Invalid credentials", http.StatusBadRequest)
	ErrRoleMismatch          = apperrors.NewDomainError(apperrors.CodeRoleMismatch, "Role mismatch", http.StatusBadRequest)
	ErrUserNotFound          = apperrors.NewNotFound("User")

	ErrOnlyStudentsApply = apperrors.NewForbidden("Only students can apply")
	ErrOnlyStudents      = apperrors.NewForbidden("Only students")
	ErrOnlyTPO           = apperrors.NewForbidden("Only TPO")
	ErrJobIDRequired     = apperrors.NewMissingField("Job ID required")
	ErrJobNotFound       = apperrors.NewNotFound("Job")

	ErrMissingJobFields = apperrors.NewMissingField("Missing required fields")
)
