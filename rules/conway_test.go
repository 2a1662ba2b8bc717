package rules

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		wantAlive bool
		wantRole  Role
	}{
		{"dead with 0", 0, false, false, None},
		{"dead with 2", 2, false, false, None},
		{"dead with 3 is born", 3, false, true, Birth},
		{"dead with 4", 4, false, false, None},
		{"dead with 8", 8, false, false, None},
		{"alive with 0 dies", 0, true, false, None},
		{"alive with 1 dies", 1, true, false, None},
		{"alive with 2 survives", 2, true, true, Survive},
		{"alive with 3 survives", 3, true, true, Survive},
		{"alive with 4 dies", 4, true, false, None},
		{"alive with 8 dies", 8, true, false, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alive, role := Transition(tt.neighbors, tt.alive)
			if alive != tt.wantAlive || role != tt.wantRole {
				t.Fatalf("Transition(%d, %v) = (%v, %v), want (%v, %v)",
					tt.neighbors, tt.alive, alive, role, tt.wantAlive, tt.wantRole)
			}
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.wantAlive {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.wantAlive)
			}
		})
	}
}
