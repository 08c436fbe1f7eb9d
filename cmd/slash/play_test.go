package main

import "testing"

func TestResolveMode(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "slash"},
		{[]string{"classic"}, "slash"},
		{[]string{"endless"}, "slash_endless"},
		{[]string{"slash_endless"}, "slash_endless"},
		{[]string{"bogus"}, "bogus"},
	}

	for _, tt := range tests {
		if got := resolveMode(tt.args); got != tt.want {
			t.Errorf("resolveMode(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}
