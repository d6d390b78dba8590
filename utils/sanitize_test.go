package utils

import "testing"

func TestSanitizeReason(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"contest winner", "contest winner"},
		{"  padded  ", "padded"},
		{`<script>alert(1)</script>spot bonus`, "spot bonus"},
		{`<b>quarterly</b> award`, "quarterly award"},
	}
	for _, tc := range cases {
		if got := SanitizeReason(tc.in); got != tc.want {
			t.Errorf("SanitizeReason(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
