package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestConfirmPrompt(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "y\n", want: true},
		{name: "yes word", answer: "yes\n", want: true},
		{name: "uppercase", answer: "Y\n", want: true},
		{name: "no", answer: "n\n", want: false},
		{name: "empty defaults to no", answer: "\n", want: false},
		{name: "garbage", answer: "maybe\n", want: false},
		{name: "closed input", answer: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetIn(strings.NewReader(tt.answer))

			got := confirmPrompt(cmd, "Delete order 42?")
			if got != tt.want {
				t.Errorf("confirmPrompt(%q) = %v, want %v", tt.answer, got, tt.want)
			}
			// The question goes to the command's output stream, not
			// straight to os.Stdout, so hosts and tests can capture it.
			if !strings.Contains(out.String(), "Delete order 42?") {
				t.Errorf("prompt not written to command output: %q", out.String())
			}
		})
	}
}
