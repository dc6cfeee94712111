package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma"
	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		want     []chroma.Token
	}{
		{
			"number and comment", "x := 1 // one", "go",
			[]chroma.Token{
				{Type: chroma.Text, Value: "x := "},
				{Type: chroma.LiteralNumber, Value: "1"},
				{Type: chroma.Text, Value: " "},
				{Type: chroma.CommentSingle, Value: "// one"},
			},
		},
		{
			"comment marker inside string", `return "a // b"`, "golang",
			[]chroma.Token{
				{Type: chroma.Keyword, Value: "return"},
				{Type: chroma.Text, Value: " "},
				{Type: chroma.LiteralString, Value: `"a // b"`},
			},
		},
		{
			"escaped quote", `s = 'it\'s' # note`, "PY",
			[]chroma.Token{
				{Type: chroma.Text, Value: "s = "},
				{Type: chroma.LiteralString, Value: `'it\'s'`},
				{Type: chroma.Text, Value: " "},
				{Type: chroma.CommentSingle, Value: "# note"},
			},
		},
		{
			"keywords are whole words", "iffy if x1 = 0x1F", "js",
			[]chroma.Token{
				{Type: chroma.Text, Value: "iffy "},
				{Type: chroma.Keyword, Value: "if"},
				{Type: chroma.Text, Value: " x1 = "},
				{Type: chroma.LiteralNumber, Value: "0x1F"},
			},
		},
		{
			"json has no comments", `{"a": true} # no`, "json",
			[]chroma.Token{
				{Type: chroma.Text, Value: "{"},
				{Type: chroma.LiteralString, Value: `"a"`},
				{Type: chroma.Text, Value: ": "},
				{Type: chroma.Keyword, Value: "true"},
				{Type: chroma.Text, Value: "} # no"},
			},
		},
		{
			"lines are joined with text", "a\nb", "rust",
			[]chroma.Token{{Type: chroma.Text, Value: "a\nb"}},
		},
		{"unsupported language", "let x = 1", "unknownlang", nil},
		{"empty language", "let x = 1", "", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Highlight(test.code, test.language))
		})
	}
}

func TestHighlightConcatenation(t *testing.T) {
	code := "def f(x):\n    return \"#\" + str(x) # trailing\n\n\tpass\n"
	var b strings.Builder
	for _, token := range Highlight(code, "python") {
		b.WriteString(token.Value)
	}
	assert.Equal(t, code, b.String())
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "c++", Lookup("cpp").Name)
	assert.Equal(t, "c#", Lookup("CSharp").Name)
	assert.Equal(t, "go", Lookup(" Go ").Name)
	assert.Nil(t, Lookup("unknownlang"))
	assert.True(t, Supported("TypeScript"))
	assert.False(t, Supported(""))
}

func TestLanguages(t *testing.T) {
	names := Languages()
	assert.Contains(t, names, "go")
	assert.Contains(t, names, "rs")
	assert.IsIncreasing(t, names)
}
