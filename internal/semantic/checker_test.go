package semantic

import (
	"testing"

	"github.com/oxlang/oxc/internal/parser"
)

func check(t *testing.T, src string) *Result {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return Check(prog, src)
}

func TestCheckWellTypedProgram(t *testing.T) {
	res := check(t, `
		class Animal {
			name: string;
			constructor(name: string) {
				this.name = name;
			}
		}
		class Dog extends Animal {}
		let a: Animal = new Animal("Rex");
	`)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %s", res.Errors.Format(false))
	}
	if res.Classes.Lookup("Animal") == nil {
		t.Fatal("Animal not registered in class table")
	}
	if !res.Classes.IsSubtype("Dog", "Animal") {
		t.Error("Dog should be a subtype of Animal")
	}
}

func TestCheckDuplicateClass(t *testing.T) {
	res := check(t, `
		class Foo {}
		class Foo {}
	`)
	if !res.Errors.HasErrors() {
		t.Fatal("expected a duplicate-class error")
	}
}

func TestCheckUnknownSupertype(t *testing.T) {
	res := check(t, `class Dog extends Ghost {}`)
	if !res.Errors.HasErrors() {
		t.Fatal("expected an unknown-supertype error")
	}
}

func TestCheckCyclicInheritanceDirect(t *testing.T) {
	res := check(t, `
		class A extends B {}
		class B extends A {}
	`)
	if !res.Errors.HasErrors() {
		t.Fatal("expected a cyclic-inheritance error")
	}
}

func TestCheckCyclicInheritanceSelf(t *testing.T) {
	res := check(t, `class A extends A {}`)
	if !res.Errors.HasErrors() {
		t.Fatal("expected a cyclic-inheritance error for a class extending itself")
	}
}

func TestCheckNonCyclicDeepChainOK(t *testing.T) {
	res := check(t, `
		class A {}
		class B extends A {}
		class C extends B {}
	`)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors on a non-cyclic chain: %s", res.Errors.Format(false))
	}
}

func TestCheckUnknownVarType(t *testing.T) {
	res := check(t, `let x: Ghost = new Ghost();`)
	if !res.Errors.HasErrors() {
		t.Fatal("expected an unknown-type error")
	}
}

func TestCheckBuiltinVarTypesOK(t *testing.T) {
	res := check(t, `
		let a: int = 1;
		let b: string = "hi";
		let c: bool = true;
	`)
	if res.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %s", res.Errors.Format(false))
	}
}

func TestIsSubtypeReflexiveAndVoid(t *testing.T) {
	tbl := newClassTable()
	tbl.add(&ClassInfo{Name: "A", FieldTypes: map[string]string{}, Methods: map[string]MethodInfo{}})
	if !tbl.IsSubtype("A", "A") {
		t.Error("A should be a subtype of itself")
	}
	if tbl.IsSubtype("A", "void") || tbl.IsSubtype("void", "A") {
		t.Error("void should never participate in the subtype relation")
	}
}

func TestResolveMethodWalksSuperChain(t *testing.T) {
	res := check(t, `
		class Animal {
			speak(): string {
				return "...";
			}
		}
		class Dog extends Animal {}
	`)
	owner, info, ok := res.Classes.ResolveMethod("Dog", "speak")
	if !ok {
		t.Fatal("expected speak to resolve via the superclass chain")
	}
	if owner != "Animal" {
		t.Errorf("owner = %q, want %q", owner, "Animal")
	}
	if info.ReturnType != "string" {
		t.Errorf("return type = %q, want %q", info.ReturnType, "string")
	}
}

func TestResolveMethodNotFound(t *testing.T) {
	res := check(t, `class Foo {}`)
	_, _, ok := res.Classes.ResolveMethod("Foo", "bark")
	if ok {
		t.Fatal("expected bark to be unresolved on Foo")
	}
}
