package registry

import (
	"strings"
	"testing"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/variant"
)

func TestLookupEveryPair(t *testing.T) {
	for _, kind := range Kinds() {
		for _, v := range []variant.Variant{variant.Legacy, variant.Modern, variant.Hybrid} {
			set, err := Lookup(kind, v)
			if err != nil {
				t.Fatalf("Lookup(%s, %s) returned error: %v", kind, v, err)
			}
			if len(set.Files) == 0 {
				t.Errorf("Lookup(%s, %s) returned empty file set", kind, v)
			}
			if set.Files[0].Role != RoleImplementation {
				t.Errorf("Lookup(%s, %s): first file role = %s, want %s", kind, v, set.Files[0].Role, RoleImplementation)
			}
		}
	}
}

func TestLookupHybridPrefersModern(t *testing.T) {
	hybrid, err := Lookup(KindComponent, variant.Hybrid)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	modern, err := Lookup(KindComponent, variant.Modern)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if hybrid.Files[0].TemplateRef != modern.Files[0].TemplateRef {
		t.Errorf("Hybrid lookup should resolve to the modern template set, got %s", hybrid.Files[0].TemplateRef)
	}
}

func TestEveryRegisteredBodyLoads(t *testing.T) {
	for _, set := range All() {
		for _, file := range set.Files {
			body, err := Body(file.TemplateRef)
			if err != nil {
				t.Errorf("Body(%s) for %s/%s returned error: %v", file.TemplateRef, set.Kind, set.Variant, err)
				continue
			}
			if strings.TrimSpace(body) == "" {
				t.Errorf("Body(%s) is empty", file.TemplateRef)
			}
		}
	}
}

func TestBodyMissing(t *testing.T) {
	_, err := Body("nonexistent.ts.tmpl")
	if err == nil {
		t.Fatal("Body should fail for a missing template")
	}
	if !errs.IsCode(err, errs.CodeUnknownTemplate) {
		t.Errorf("Expected code %s, got %s", errs.CodeUnknownTemplate, errs.CodeOf(err))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Kind
		expectErr bool
	}{
		{name: "component", input: "component", want: KindComponent},
		{name: "case insensitive", input: "Guard", want: KindGuard},
		{name: "unknown kind", input: "resolver", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) should fail", tt.input)
				}
				if !errs.IsCode(err, errs.CodeUnknownTemplate) {
					t.Errorf("Expected code %s, got %s", errs.CodeUnknownTemplate, errs.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestWiringRegistration(t *testing.T) {
	// Legacy declarables and module-registered injectables carry a wiring
	// descriptor; services and modules never do, and no modern set does.
	wantWiring := map[Kind]bool{
		KindComponent:   true,
		KindDirective:   true,
		KindPipe:        true,
		KindGuard:       true,
		KindInterceptor: true,
		KindService:     false,
		KindModule:      false,
	}

	for kind, want := range wantWiring {
		legacy, err := Lookup(kind, variant.Legacy)
		if err != nil {
			t.Fatalf("Lookup(%s, legacy) returned error: %v", kind, err)
		}
		if got := hasRole(legacy, RoleWiring); got != want {
			t.Errorf("%s/legacy wiring = %v, want %v", kind, got, want)
		}

		modern, err := Lookup(kind, variant.Modern)
		if err != nil {
			t.Fatalf("Lookup(%s, modern) returned error: %v", kind, err)
		}
		if hasRole(modern, RoleWiring) {
			t.Errorf("%s/modern should not register a wiring file", kind)
		}
	}
}

func hasRole(set TemplateSet, role Role) bool {
	for _, file := range set.Files {
		if file.Role == role {
			return true
		}
	}
	return false
}

func TestImplBase(t *testing.T) {
	if got := ImplBase(KindComponent, variant.Legacy, "user-profile"); got != "user-profile.component" {
		t.Errorf("ImplBase component = %q", got)
	}
	if got := ImplBase(KindModule, variant.Modern, "shop"); got != "shop.routes" {
		t.Errorf("ImplBase modern module = %q", got)
	}
	if got := ImplBase(KindModule, variant.Legacy, "shop"); got != "shop.module" {
		t.Errorf("ImplBase legacy module = %q", got)
	}
	if got := ImplBase(KindGuard, variant.Hybrid, "admin"); got != "admin.guard" {
		t.Errorf("ImplBase hybrid guard = %q", got)
	}
}

func TestAllOrdering(t *testing.T) {
	sets := All()
	if len(sets) != len(Kinds())*2 {
		t.Fatalf("All() returned %d sets, want %d", len(sets), len(Kinds())*2)
	}
	first := All()
	for i := range sets {
		if sets[i].Kind != first[i].Kind || sets[i].Variant != first[i].Variant {
			t.Fatal("All() ordering is not deterministic")
		}
	}
}
