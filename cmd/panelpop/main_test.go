package main

import (
	"errors"
	"testing"
)

func TestValidateFPS(t *testing.T) {
	tests := []struct {
		fps     int
		wantErr bool
	}{
		{60, false},
		{1, false},
		{0, true},
		{-10, true},
	}

	for _, tt := range tests {
		err := validateFPS(tt.fps)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFPS(%d) error = %v, wantErr %v", tt.fps, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errBadFPS) {
			t.Errorf("validateFPS(%d) error should wrap errBadFPS, got %v", tt.fps, err)
		}
	}
}

func TestRootRejectsZeroFPS(t *testing.T) {
	t.Cleanup(func() {
		flagFPS = 60
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"list", "--fps", "0"})
	err := rootCmd.Execute()
	if !errors.Is(err, errBadFPS) {
		t.Errorf("Execute() with --fps 0 = %v, expected errBadFPS", err)
	}
}
