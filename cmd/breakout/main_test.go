package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecutePrintsErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"sim without script", []string{"sim"}, "accepts 1 arg(s), received 0"},
		{"unknown flag", []string{"--bogus"}, "unknown flag: --bogus"},
		{"unknown subcommand arg", []string{"tui", "extra"}, "unknown command"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			err := execute(&stderr, tc.args)
			if err == nil {
				t.Fatal("execute() should fail")
			}
			if !strings.Contains(stderr.String(), tc.expected) {
				t.Errorf("stderr = %q, expected it to contain %q", stderr.String(), tc.expected)
			}
			if strings.TrimSpace(stderr.String()) != err.Error() {
				t.Errorf("stderr = %q, expected the error %q", stderr.String(), err.Error())
			}
		})
	}
}
