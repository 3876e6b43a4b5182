package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/errors"
)

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		narg    int
		wantErr bool
	}{
		{name: "no arguments", narg: 0, wantErr: true},
		{name: "one argument", narg: 1, wantErr: false},
		{name: "two arguments", narg: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.narg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrTypeUsage))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_UsageErrorExitCode(t *testing.T) {
	assert.Equal(t, 2, run([]string{}))
	assert.Equal(t, 2, run([]string{"a.xlsx", "b.xlsx"}))
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-version"}))
}
