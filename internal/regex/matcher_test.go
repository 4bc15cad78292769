package regex

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a", "apple", true},
		{"a", "dog", false},
		{`\d`, "apple123", true},
		{`\d`, "apple", false},
		{`\w`, "$!?", false},
		{`\w`, "_", true},
		{`\s`, "a b", true},
		{`\s`, "ab", false},
		{"[abc]", "xyzc", true},
		{"[abc]", "xyz", false},
		{"[^abc]", "cab", false},
		{"[^abc]", "cabd", true},
		{"[]", "anything", false},
		{"[^]", "x", true},
		{"^log", "log message", true},
		{"^log", "a log message", false},
		{"abc$", "xxabc", true},
		{"abc$", "abcx", false},
		{"^abc$", "abc", true},
		{"(cat|dog)", "I have a dog", true},
		{"(cat|dog)", "I have a fish", false},
		{"(cat|dog)$", "I like cat", true},
		{"(cat|dog)$", "I like cats", false},
		{"a|b|c", "xxc", true},
		{"a+", "aaab", true},
		{"a+", "b", false},
		{"ca+t", "caaat", true},
		{"ca+t", "ct", false},
		{"ca*t", "ct", true},
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{"colou?r", "colouur", false},
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{`\d apple`, "1 apple", true},
		{`\d\d\d apples`, "sally has 12 apples", false},
		{`\w\w\w`, "a_1", true},
		{"", "", true},
		{"", "abc", true},
		{"^", "", true},
		{"$", "abc", true},
		{"x*", "", true},
		{"(a*)+", "b", true},
		{"a^b", "a^b", false},
		{"é.", "caféx", true},
		{".", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.input))
		})
	}
}

func TestQuantifierBacktracking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a+ab", "aaab", true},
		{"a*a", "aaa", true},
		{`\d+5`, "12345", true},
		{`\w+s$`, "dogs", true},
		{".*x", "abxcx", true},
		{"a?a", "a", true},
		{"(ab)+c", "ababc", true},
		{"[ab]+b", "aab", true},
		{"(a|ab)c", "abc", true},
		{"(a|ab)(c|bcd)$", "abcd", true},
		{"^(cat|dog)s? and (cat|dog)s?$", "dogs and cat", true},
		{"^(cat|dog)s? and (cat|dog)s?$", "dogs and fish", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, re.MatchString(tt.input))
		})
	}
}

func TestInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		want    []int
	}{
		{"\xff", "\xff", []int{0, 1}},
		{"\xff", "\xfe", nil},
		{"a\xffb", "xa\xffb", []int{1, 4}},
		{"a\xffb", "a\xfeb", nil},
		{`\` + "\xff", "\xff", []int{0, 1}},
		{"\uFFFD", "\xff", nil},
		{"\uFFFD", "\uFFFD", []int{0, 3}},
		{"a.b", "a\xffb", []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, re.FindStringIndex(tt.input))

			// the AST walk alone must agree with the prefiltered search
			end, ok := matchAt(re.Root().Nodes, tt.input, 0)
			if tt.want != nil && tt.want[0] == 0 {
				assert.True(t, ok)
				assert.Equal(t, tt.want[1], end)
			}
			if tt.want == nil {
				assert.False(t, ok)
			}
		})
	}
}

func TestFindStringIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		want    []int
	}{
		{"a+", "aaab", []int{0, 3}},
		{"a+", "baaab", []int{1, 4}},
		{"a+", "b", nil},
		{"dog", "I have a dog", []int{9, 12}},
		{"(cat|dog)$", "cat or dog", []int{7, 10}},
		{"colou?r", "the colour red", []int{4, 10}},
		{"x*", "abc", []int{0, 0}},
		{".*", "héllo", []int{0, 6}},
		{"^a", "ba", nil},
		{"(a|ab)(c|bcd)", "abcd", []int{0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, re.FindStringIndex(tt.input))
		})
	}
}

func TestFindString(t *testing.T) {
	t.Parallel()

	re := MustCompile(`\d+ (apple|pear)s?`)
	assert.Equal(t, "12 apples", re.FindString("I ate 12 apples today"))
	assert.Equal(t, "", re.FindString("none here"))
}

func TestFindAllStringIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		n       int
		want    [][]int
	}{
		{"a", "banana", -1, [][]int{{1, 2}, {3, 4}, {5, 6}}},
		{"a", "banana", 2, [][]int{{1, 2}, {3, 4}}},
		{"a", "banana", 0, nil},
		{`\d+`, "a1 b22 c333", -1, [][]int{{1, 2}, {4, 6}, {8, 11}}},
		{"a*", "baaa", -1, [][]int{{0, 0}, {1, 4}}},
		{"^a", "aaa", -1, [][]int{{0, 1}}},
		{"x", "abc", -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, re.FindAllStringIndex(tt.input, tt.n))
		})
	}
}

func TestPackageMatchString(t *testing.T) {
	t.Parallel()

	ok, err := MatchString(`\d`, "apple123")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = MatchString("(abc", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `in "(abc"`)
}

func TestMustCompilePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustCompile("*abc") })
	assert.NotPanics(t, func() { MustCompile("abc") })
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"(cat|dog)s?", `^\w+\d*$`, "[^ab]+c|x"} {
		first := MustCompile(pattern)
		second := MustCompile(pattern)
		assert.Equal(t, first.Root(), second.Root(), pattern)
	}
}

// line is a short string over a small alphabet, so that properties about
// membership are exercised in both directions.
type line string

const lineAlphabet = "abcdgost xy19_.-\t"

func (line) Generate(r *rand.Rand, size int) reflect.Value {
	n := r.Intn(12)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(lineAlphabet[r.Intn(len(lineAlphabet))])
	}
	return reflect.ValueOf(line(b.String()))
}

func checkProperty(t *testing.T, f func(line) bool) {
	t.Helper()
	cfg := &quick.Config{MaxCount: 500, Rand: rand.New(rand.NewSource(1))}
	require.NoError(t, quick.Check(f, cfg))
}

func TestProperties(t *testing.T) {
	t.Parallel()

	t.Run("single literal is contains", func(t *testing.T) {
		for _, c := range "abxy1_ -" {
			re := MustCompile(string(c))
			checkProperty(t, func(s line) bool {
				return re.MatchString(string(s)) == strings.ContainsRune(string(s), c)
			})
		}
	})

	t.Run("digit class", func(t *testing.T) {
		re := MustCompile(`\d`)
		checkProperty(t, func(s line) bool {
			return re.MatchString(string(s)) == strings.ContainsAny(string(s), "0123456789")
		})
	})

	t.Run("word class", func(t *testing.T) {
		re := MustCompile(`\w`)
		checkProperty(t, func(s line) bool {
			return re.MatchString(string(s)) == (strings.IndexFunc(string(s), isWord) >= 0)
		})
	})

	t.Run("bracket sets", func(t *testing.T) {
		for _, set := range []string{"abc", "x1 ", "_.t"} {
			pos := MustCompile("[" + set + "]")
			neg := MustCompile("[^" + set + "]")
			checkProperty(t, func(s line) bool {
				in := strings.ContainsAny(string(s), set)
				out := strings.IndexFunc(string(s), func(r rune) bool {
					return !strings.ContainsRune(set, r)
				}) >= 0
				return pos.MatchString(string(s)) == in && neg.MatchString(string(s)) == out
			})
		}
	})

	t.Run("anchors", func(t *testing.T) {
		start := MustCompile("^ab")
		end := MustCompile("ab$")
		checkProperty(t, func(s line) bool {
			return start.MatchString(string(s)) == strings.HasPrefix(string(s), "ab") &&
				end.MatchString(string(s)) == strings.HasSuffix(string(s), "ab")
		})
	})

	t.Run("recompiling gives the same answers", func(t *testing.T) {
		a := MustCompile("(go|do)g?s+")
		b := MustCompile("(go|do)g?s+")
		checkProperty(t, func(s line) bool {
			return a.MatchString(string(s)) == b.MatchString(string(s))
		})
	})
}
