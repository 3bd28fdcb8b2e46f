package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/console-arcade/internal/console"
)

func TestPickGame(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantErr     error
		wantInvalid int
	}{
		{name: "quit", input: "q\n", want: ""},
		{name: "quit upper case", input: " Q \n", want: ""},
		{name: "first game", input: "1\n", want: "adventure"},
		{name: "invalid then select", input: "x\n0\n\n2\n", want: "rps", wantInvalid: 3},
		{name: "input closed", input: "", wantErr: console.ErrInputClosed},
		{name: "closed after invalid", input: "chess\n", wantErr: console.ErrInputClosed, wantInvalid: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			con := console.New(strings.NewReader(tt.input), &out)

			got, err := pickGame(con)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("pickGame() err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("pickGame() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("pickGame() = %q, want %q", got, tt.want)
			}

			if n := strings.Count(out.String(), console.InvalidInputMessage); n != tt.wantInvalid {
				t.Errorf("Expected %d invalid-input messages, got %d", tt.wantInvalid, n)
			}
			if !strings.Contains(out.String(), "2. Rock, Paper, Scissors") {
				t.Errorf("Menu should number the games:\n%s", out.String())
			}
		})
	}
}
