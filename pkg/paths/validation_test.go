// Test Type: Unit Test
// Description: Tests for the paths package - recovery key validation

package paths_test

import (
	"strings"
	"testing"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestValidateRecoveryKey(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name: "simple_key",
			key:  "draft-2024",
		},
		{
			name: "underscores_and_dashes",
			key:  "my_draft-v2",
		},
		{
			name: "single_extension",
			key:  "snapshot.json",
		},
		{
			name: "max_length_key",
			key:  strings.Repeat("a", 100),
		},
		{
			name:        "empty_key",
			key:         "",
			expectError: true,
		},
		{
			name:        "too_long_key",
			key:         strings.Repeat("a", 101),
			expectError: true,
		},
		{
			name:        "path_traversal",
			key:         "../etc/passwd",
			expectError: true,
		},
		{
			name:        "forward_slash",
			key:         "dir/file",
			expectError: true,
		},
		{
			name:        "backslash",
			key:         `dir\file`,
			expectError: true,
		},
		{
			name:        "double_dot",
			key:         "a..b",
			expectError: true,
		},
		{
			name:        "two_extensions",
			key:         "archive.tar.gz",
			expectError: true,
		},
		{
			name:        "leading_dot",
			key:         ".hidden",
			expectError: true,
		},
		{
			name:        "trailing_dot",
			key:         "name.",
			expectError: true,
		},
		{
			name:        "space",
			key:         "my file",
			expectError: true,
		},
		{
			name:        "null_byte",
			key:         "file\x00name",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := paths.ValidateRecoveryKey(tt.key)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
