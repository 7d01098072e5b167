package main_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/micahco/dduwash/cmd/dduwash"
)

func TestMCPCommand_usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Args     []string
		Stdout   string
		Stderr   string
		ExitCode int
	}{
		{[]string{"-h"}, "dduwash mcp -- Start MCP server on stdio\n", "", 0},
		{[]string{"--foo"}, "", "unknown flag: --foo\n", 2},
		{[]string{"--endpoint", "/api"}, "", "origin is required for relative endpoint", 2},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.Args, " "), func(t *testing.T) {
			var stdin, stdout, stderr bytes.Buffer
			cmd := &main.MCPCommand{InStream: &stdin, OutStream: &stdout, ErrStream: &stderr}

			code := cmd.Run(append([]string{"dduwash", "mcp"}, tt.Args...))
			if code != tt.ExitCode {
				t.Errorf("expected exit code %d but got %d", tt.ExitCode, code)
			}
			if !strings.HasPrefix(stdout.String(), tt.Stdout) {
				t.Errorf("unexpected stdout:\n%s", stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.Stderr) {
				t.Errorf("unexpected stderr:\n%s", stderr.String())
			}
		})
	}
}
