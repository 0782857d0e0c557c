package domain

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"processing to completed", StatusProcessing, StatusCompleted, true},
		{"pending to completed skips a stage", StatusPending, StatusCompleted, false},
		{"completed to processing is backward", StatusCompleted, StatusProcessing, false},
		{"processing to pending is backward", StatusProcessing, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCompleted, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.from, tt.to); got != tt.want {
				t.Errorf("CanAdvance(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false, want true", s)
		}
	}
	if ValidStatus("shipped") {
		t.Error(`ValidStatus("shipped") = true, want false`)
	}
	if ValidStatus("") {
		t.Error(`ValidStatus("") = true, want false`)
	}
}
