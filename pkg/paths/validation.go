package paths

import (
	"regexp"

	"github.com/fenestra-app/fenestra/pkg/errors"
)

// MaxRecoveryKeyLen is the maximum length of a recovery key.
const MaxRecoveryKeyLen = 100

// recoveryKeyPattern is a structural allow-list: a run of alphanumerics,
// dashes, and underscores, with at most one trailing alphanumeric extension.
// Separators and traversal sequences can never match it.
var recoveryKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9]+)?$`)

// ValidateRecoveryKey ensures a recovery key is safe to use as a filename.
// Keys must:
// - Not be empty
// - Be at most MaxRecoveryKeyLen characters
// - Contain only alphanumerics, dashes, and underscores, with at most one
//   trailing dot-separated alphanumeric extension
func ValidateRecoveryKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrValidation, "filename cannot be empty")
	}

	if len(key) > MaxRecoveryKeyLen {
		return errors.Newf(errors.ErrValidation,
			"filename too long (max %d characters)", MaxRecoveryKeyLen)
	}

	if !recoveryKeyPattern.MatchString(key) {
		return errors.New(errors.ErrValidation,
			"invalid filename: only alphanumeric characters, dashes, underscores, and dots allowed")
	}

	return nil
}
