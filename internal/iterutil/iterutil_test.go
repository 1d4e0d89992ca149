package iterutil

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftRight(t *testing.T) {
	seq := maps.All(map[string]int{"a": 1})

	assert.Equal(t, []string{"a"}, slices.Collect(Left(seq)))
	assert.Equal(t, []int{1}, slices.Collect(Right(seq)))
}

func TestSeqOf(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(SeqOf(1, 2, 3)))
	assert.Empty(t, slices.Collect(SeqOf[int]()))

	var n int
	for range SeqOf(1, 2, 3) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestMap(t *testing.T) {
	doubled := Map(SeqOf(1, 2, 3), func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(doubled))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 3, Len(SeqOf("a", "b", "c")))
	assert.Equal(t, 0, Len(SeqOf[string]()))
}

func TestSplitStringSeq(t *testing.T) {
	cases := []struct {
		name string
		s    string
		sep  string
		want []string
	}{
		{name: "basic", s: "a/b/c", sep: "/", want: []string{"a", "b", "c"}},
		{name: "leading separator", s: "/a", sep: "/", want: []string{"", "a"}},
		{name: "trailing separator", s: "a/", sep: "/", want: []string{"a", ""}},
		{name: "empty string", s: "", sep: "/", want: []string{""}},
		{name: "only separators", s: "//", sep: "/", want: []string{"", "", ""}},
		{name: "no separator", s: "abc", sep: "/", want: []string{"abc"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slices.Collect(SplitStringSeq(tc.s, tc.sep)))
		})
	}
}

func TestSplitStringSeqEmptySeparator(t *testing.T) {
	assert.Panics(t, func() {
		SplitStringSeq("abc", "")
	})
}

func TestSplitStringSeqEarlyBreak(t *testing.T) {
	var got []string
	for frag := range SplitStringSeq("a/b/c", "/") {
		got = append(got, frag)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
