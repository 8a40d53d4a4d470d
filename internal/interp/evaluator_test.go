package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oxlang/oxc/internal/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	var buf bytes.Buffer
	err = New(&buf).Run(prog)
	return buf.String(), err
}

func TestFlatPrecedenceArithmetic(t *testing.T) {
	// "1 + 2 * 3" evaluates left-to-right as (1+2)*3 = 9.
	out, err := run(t, "print(1 + 2 * 3);")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "9\n" {
		t.Errorf("output = %q, want %q", out, "9\n")
	}
}

func TestStringConcatenationStringifiesNonStrings(t *testing.T) {
	out, err := run(t, `print("count: " + 3);`)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "count: 3\n" {
		t.Errorf("output = %q, want %q", out, "count: 3\n")
	}
}

func TestIntegerDivisionRoundsTowardNegativeInfinity(t *testing.T) {
	out, err := run(t, "print(-7 / 2);")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "-4\n" {
		t.Errorf("output = %q, want %q", out, "-4\n")
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "print(1 / 0);")
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Errorf("error type = %T, want *RuntimeError", err)
	}
}

func TestComparisonProducesIntegerOneOrZero(t *testing.T) {
	out, err := run(t, "print(1 < 2); print(2 < 1);")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "1\n0\n" {
		t.Errorf("output = %q, want %q", out, "1\n0\n")
	}
}

func TestClassInstanceFieldsAndMethods(t *testing.T) {
	src := `
		class Animal {
			name: string;
			constructor(name: string) {
				this.name = name;
			}
			speak(): string {
				return this.name;
			}
		}
		let a: Animal = new Animal("Rex");
		print(a.speak());
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "Rex\n" {
		t.Errorf("output = %q, want %q", out, "Rex\n")
	}
}

func TestInheritedMethodResolvesUpSuperChain(t *testing.T) {
	src := `
		class Animal {
			speak(): string {
				return "...";
			}
		}
		class Dog extends Animal {}
		let d: Dog = new Dog();
		print(d.speak());
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "...\n" {
		t.Errorf("output = %q, want %q", out, "...\n")
	}
}

func TestSuperCallDispatchesFromDeclaringClass(t *testing.T) {
	src := `
		class Animal {
			speak(): string {
				return "generic noise";
			}
		}
		class Dog extends Animal {
			speak(): string {
				return super.speak() + "!";
			}
		}
		let d: Dog = new Dog();
		print(d.speak());
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "generic noise!\n" {
		t.Errorf("output = %q, want %q", out, "generic noise!\n")
	}
}

func TestStaticLikeCallOnClassRef(t *testing.T) {
	src := `
		class Util {
			double(n: int): int {
				return n * 2;
			}
		}
		print(Util.double(5));
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "10\n" {
		t.Errorf("output = %q, want %q", out, "10\n")
	}
}

func TestUninitializedFieldIsNull(t *testing.T) {
	src := `
		class Box {
			value: int;
		}
		let b: Box = new Box();
		print(b.value);
	`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out != "null\n" {
		t.Errorf("output = %q, want %q", out, "null\n")
	}
}

func TestMethodNotFoundNamesMethodAndClass(t *testing.T) {
	src := `
		class Foo {}
		let f: Foo = new Foo();
		f.bark();
	`
	_, err := run(t, src)
	if err == nil {
		t.Fatal("expected a method-not-found error")
	}
	if !strings.Contains(err.Error(), "bark") || !strings.Contains(err.Error(), "Foo") {
		t.Errorf("error = %q, want it to name both the method and the class", err.Error())
	}
}
