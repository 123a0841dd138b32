package action

import (
	"errors"
	"testing"
)

func TestActionZeroValue(t *testing.T) {
	var a Action
	if a != NoOp {
		t.Errorf("zero Action = %v, want NoOp", a)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Action
		wantErr bool
	}{
		{"NoOp", NoOp, false},
		{"Quit", Quit, false},
		{"AddTorrent", AddTorrent, false},
		{"Cancel", Cancel, false},
		{"quit", NoOp, true},
		{"", NoOp, true},
		{"Delete", NoOp, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownAction) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownAction", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, a := range All() {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		var back Action
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("round trip %v -> %q -> %v", a, text, back)
		}
	}
}

func TestStringUnknown(t *testing.T) {
	if got := Action(42).String(); got != "Action(42)" {
		t.Errorf("Action(42).String() = %q", got)
	}
}
