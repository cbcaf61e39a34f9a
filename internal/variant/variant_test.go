package variant

import (
	"testing"

	"github.com/ngforge/ngforge/internal/errs"
)

func TestResolveBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		override Variant
		detected *Detected
		want     Variant
	}{
		{name: "major 12 is legacy", detected: &Detected{Major: 12}, want: Legacy},
		{name: "major 15 is legacy", detected: &Detected{Major: 15}, want: Legacy},
		{name: "major 16 is hybrid", detected: &Detected{Major: 16}, want: Hybrid},
		{name: "major 16 minor 2 is hybrid", detected: &Detected{Major: 16, Minor: 2}, want: Hybrid},
		{name: "17.0 is hybrid", detected: &Detected{Major: 17, Minor: 0}, want: Hybrid},
		{name: "17.1 is modern", detected: &Detected{Major: 17, Minor: 1}, want: Modern},
		{name: "17.3 is modern", detected: &Detected{Major: 17, Minor: 3}, want: Modern},
		{name: "major 18 is modern", detected: &Detected{Major: 18}, want: Modern},
		{name: "major 20 is modern", detected: &Detected{Major: 20}, want: Modern},
		{name: "override beats detection", override: Legacy, detected: &Detected{Major: 20}, want: Legacy},
		{name: "override without detection", override: Modern, want: Modern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.override, tt.detected)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveIndeterminate(t *testing.T) {
	_, err := Resolve(None, nil)
	if err == nil {
		t.Fatal("Resolve without inputs should fail")
	}
	if !errs.IsCode(err, errs.CodeIndeterminateVariant) {
		t.Errorf("Expected code %s, got %s", errs.CodeIndeterminateVariant, errs.CodeOf(err))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Variant
		expectErr bool
	}{
		{name: "empty means no override", input: "", want: None},
		{name: "legacy", input: "legacy", want: Legacy},
		{name: "modern", input: "modern", want: Modern},
		{name: "hybrid", input: "hybrid", want: Hybrid},
		{name: "unknown value", input: "classic", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("Parse(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEffective(t *testing.T) {
	if Effective(Legacy) != Legacy {
		t.Error("Effective(Legacy) should be Legacy")
	}
	if Effective(Modern) != Modern {
		t.Error("Effective(Modern) should be Modern")
	}
	if Effective(Hybrid) != Modern {
		t.Error("Effective(Hybrid) should prefer the modern template family")
	}
}
