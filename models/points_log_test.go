package models

import "testing"

func TestAdminAdjustmentSource(t *testing.T) {
	got := AdminAdjustmentSource("contest")
	if got != "admin_adjustment: contest" {
		t.Errorf("AdminAdjustmentSource = %q", got)
	}
}
