// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: IDFn should be DefaultIDFn
	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithExcelColumnIDs should override to ExcelColumnIDFn
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	// 4. WithTriLetterIDs should override to TriLetterIDFn
	if got := newBuilderConfig(WithTriLetterIDs()).idFn(27); got != "ABB" {
		t.Errorf("WithTriLetterIDs: expected \"ABB\", got %q", got)
	}

	// 5. WithDefaultIDs after another option should reset to DefaultIDFn
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}

	// 6. WithSymbNumb prefixes decimal IDs
	if got := newBuilderConfig(WithSymbNumb("n")).idFn(12); got != "n12" {
		t.Errorf("WithSymbNumb: expected \"n12\", got %q", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if newBuilderConfig().rng != nil {
		t.Error("default rng: expected nil")
	}

	// 2. WithSeed produces reproducible sequences
	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 5; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("WithSeed: draw %d differs: %d vs %d", i, x, y)
		}
	}

	// 3. WithRand installs the given source
	r := rand.New(rand.NewSource(1))
	if got := newBuilderConfig(WithRand(r)).rng; got != r {
		t.Error("WithRand: rng not installed")
	}
}

// TestOptionPanics verifies option constructors reject nil arguments.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
