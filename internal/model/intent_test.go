package model

import "testing"

func TestIntent_String(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected string
	}{
		{IntentIncrease, "Increase"},
		{IntentDecrease, "Decrease"},
		{Intent(42), "Unknown"},
	}

	for _, test := range tests {
		result := test.intent.String()
		if result != test.expected {
			t.Errorf("Intent(%d).String() = %s, expected %s", int(test.intent), result, test.expected)
		}
	}
}

func TestIntent_Apply(t *testing.T) {
	counter := NewDefaultCounter()

	if got := IntentIncrease.Apply(counter); got != 1 {
		t.Errorf("IntentIncrease.Apply() = %d, expected 1", got)
	}

	if got := IntentDecrease.Apply(counter); got != 0 {
		t.Errorf("IntentDecrease.Apply() = %d, expected 0", got)
	}

	if got := Intent(42).Apply(counter); got != 0 {
		t.Errorf("unknown intent should not change value, got %d", got)
	}
}
