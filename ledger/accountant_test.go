package ledger

import "testing"

// The cached total floors at zero while the log entry keeps the full signed
// amount; the divergence under clamping is deliberate and must hold exactly.
func TestClampTotal(t *testing.T) {
	cases := []struct {
		name    string
		current int
		amount  int
		want    int
	}{
		{"positive delta", 10, 5, 15},
		{"negative delta above floor", 10, -4, 6},
		{"negative delta to exactly zero", 1, -1, 0},
		{"negative delta clamps at zero", 1, -5, 0},
		{"zero delta", 7, 0, 7},
		{"delta on empty account clamps", 0, -3, 0},
		{"large admin grant", 50, 50, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampTotal(tc.current, tc.amount); got != tc.want {
				t.Errorf("clampTotal(%d, %d) = %d, want %d", tc.current, tc.amount, got, tc.want)
			}
		})
	}
}

func TestAddPointsValidation(t *testing.T) {
	svc := NewService(nil, Options{})

	if _, err := svc.AddPoints(1, 0, "contest"); err != ErrInvalidAmount {
		t.Errorf("zero amount: err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.AddPoints(1, -5, "contest"); err != ErrInvalidAmount {
		t.Errorf("negative amount: err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.AddPoints(1, 10, "   "); err != ErrEmptyReason {
		t.Errorf("blank reason: err = %v, want ErrEmptyReason", err)
	}
}
