package rustlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rustlite"
	"github.com/dekarrin/rustlite/lex"
)

func newFrontend(t *testing.T) *rustlite.Frontend {
	fe, err := rustlite.NewFrontend(lex.Options{})
	require.NoError(t, err)
	return fe
}

func Test_Frontend_buildIsDeterministicAndMemoized(t *testing.T) {
	fe1 := newFrontend(t)
	fe2 := newFrontend(t)
	assert.Same(t, fe1.Grammar, fe2.Grammar)
	assert.Same(t, fe1.Table, fe2.Table)
}

func Test_Parse_emptyProgram(t *testing.T) {
	fe := newFrontend(t)
	tree, _, err := fe.Parse("")
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func Test_Parse_minimalFunction(t *testing.T) {
	fe := newFrontend(t)
	src := `
		fn main() {
			let mut x: i32 = 1;
			x = x + 2;
			return x;
		}
	`
	tree, toks, err := fe.Parse(src)
	require.NoError(t, err)
	require.NotNil(t, tree)

	yield := tree.Yield()
	// the yield must reproduce every input token except the trailing EOF
	assert.Equal(t, len(toks)-1, len(yield))
}

func Test_Parse_ifElseChain(t *testing.T) {
	fe := newFrontend(t)
	src := `
		fn classify(n: i32) {
			if n == 0 {
				return 0;
			} else if n < 0 {
				return 1;
			} else {
				return 2;
			}
		}
	`
	_, _, err := fe.Parse(src)
	require.NoError(t, err)
}

func Test_Parse_whileAndLoopAndBreakContinue(t *testing.T) {
	fe := newFrontend(t)
	src := `
		fn count() {
			let mut i: i32 = 0;
			while i < 10 {
				i = i + 1;
			}
			loop {
				if i == 0 {
					break;
				}
				i = i - 1;
				continue;
			}
		}
	`
	_, _, err := fe.Parse(src)
	require.NoError(t, err)
}

func Test_Parse_functionCallWithArguments(t *testing.T) {
	fe := newFrontend(t)
	src := `
		fn add(a: i32, b: i32) -> i32 {
			return a + b;
		}
		fn main() {
			let result: i32 = add(1, 2 * 3);
		}
	`
	_, _, err := fe.Parse(src)
	require.NoError(t, err)
}

func Test_Parse_mutFunctionParameter(t *testing.T) {
	fe := newFrontend(t)
	src := `fn f(mut x: i32) -> i32 { return x + 1; }`
	_, _, err := fe.Parse(src)
	require.NoError(t, err)
}

func Test_Parse_operatorPrecedence(t *testing.T) {
	fe := newFrontend(t)
	src := `
		fn main() {
			let x: i32 = 1 + 2 * 3;
			let y: i32 = -x;
			let z: i32 = (1 + 2) * 3;
		}
	`
	_, _, err := fe.Parse(src)
	require.NoError(t, err)
}

func Test_Parse_syntaxError_reportsPosition(t *testing.T) {
	fe := newFrontend(t)
	_, _, err := fe.Parse("fn main() { let x: i32 = ; }")
	require.Error(t, err)
	// the offending ';' is the 26th rune of line 1
	assert.Contains(t, err.Error(), "1:26")
}

func Test_Parse_determinism(t *testing.T) {
	fe := newFrontend(t)
	src := "fn main() { return 1 + 2; }"

	tree1, _, err := fe.Parse(src)
	require.NoError(t, err)
	tree2, _, err := fe.Parse(src)
	require.NoError(t, err)

	assert.Equal(t, tree1.String(fe.Grammar), tree2.String(fe.Grammar))
}
