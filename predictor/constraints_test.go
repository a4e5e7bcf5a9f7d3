package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesolver/feedback"
	"github.com/powellquiring/wordlesolver/lexicon"
)

func absorb(t *testing.T, c *Constraints, guess, fb string) {
	t.Helper()
	response, err := feedback.Parse(fb)
	require.NoError(t, err)
	c.Absorb(guess, response)
}

func TestAbsorbEmpty(t *testing.T) {
	c := NewConstraints()
	assert.True(t, c.Empty())
	assert.True(t, c.Allows("crane"))
	assert.False(t, c.Allows("cran"))
	assert.Equal(t, [lexicon.WordLength]byte{}, c.Mask())
}

func TestAbsorbCorrect(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "harpy", "cccww")
	assert.Equal(t, [lexicon.WordLength]byte{'h', 'a', 'r', 0, 0}, c.Mask())
	assert.Equal(t, "ahr", c.CorrectLetters().String())
	assert.Equal(t, "py", c.Absent().String())
	assert.False(t, c.Repeats())
	assert.True(t, c.Allows("hares"))
	assert.False(t, c.Allows("cares"))
	assert.False(t, c.Allows("harps"))
}

func TestAbsorbMisplacedThenCorrect(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "ocean", "mwwww")
	assert.Equal(t, []int{0}, c.Misplaced('o'))
	assert.True(t, c.Allows("broil"))
	assert.False(t, c.Allows("opium"))

	absorb(t, c, "broil", "wwcww")
	assert.Empty(t, c.Misplaced('o'))
	assert.Equal(t, []int{2}, c.Correct('o'))
	// the old misplaced position stays excluded
	assert.Equal(t, []int{0}, c.Wrong('o'))
	assert.False(t, c.Allows("ooozz"))
	assert.True(t, c.Allows("zzozz"))
	assert.True(t, c.Allows("ghost"))
}

func TestAbsorbRepeats(t *testing.T) {
	for _, test := range []struct {
		guess, fb string
		repeats   bool
	}{
		{"soles", "cmmcc", true},
		{"saves", "cwwcc", true},
		{"sades", "ccwcw", false},
		{"geese", "wmmww", true},
		{"geese", "wmwww", false},
		{"lolly", "cwwww", false},
	} {
		c := NewConstraints()
		absorb(t, c, test.guess, test.fb)
		assert.Equal(t, test.repeats, c.Repeats(), "%s %s", test.guess, test.fb)
	}
}

func TestAbsorbWrongNeverHidesCorrect(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "soles", "wwwcc")
	assert.Equal(t, []int{0}, c.Wrong('s'))
	assert.Equal(t, []int{4}, c.Correct('s'))
	assert.Equal(t, "lo", c.Absent().String())
	assert.True(t, c.Allows("cares"))
	assert.False(t, c.Allows("sires"))

	// a later wrong report at a confirmed position is ignored
	absorb(t, c, "tunes", "wwwcw")
	assert.Equal(t, []int{4}, c.Correct('s'))
	assert.Equal(t, []int{0}, c.Wrong('s'))
}

func TestAbsorbLaterEvidenceOverridesAbsent(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "crane", "wwwww")
	assert.True(t, c.Absent().Has('e'))
	absorb(t, c, "spite", "wwwwm")
	assert.False(t, c.Absent().Has('e'))
	assert.True(t, c.Present().Has('e'))
}

func TestExcluded(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "cares", "mmwww")
	excluded := c.Excluded()
	assert.Equal(t, "c", excluded[0].String())
	assert.Equal(t, "a", excluded[1].String())
	assert.Equal(t, "", excluded[2].String())
	assert.Equal(t, "ers", c.Absent().String())
}

func TestByPosition(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "cares", "mmwwc")
	assert.Equal(t, [lexicon.WordLength]string{"", "", "", "", "s"}, strings(c.ByPosition(feedback.Correct)))
	assert.Equal(t, [lexicon.WordLength]string{"c", "a", "", "", ""}, strings(c.ByPosition(feedback.Misplaced)))
	assert.Equal(t, [lexicon.WordLength]string{"", "", "r", "e", ""}, strings(c.ByPosition(feedback.Wrong)))
}

func TestClone(t *testing.T) {
	c := NewConstraints()
	absorb(t, c, "cares", "mmwww")
	clone := c.Clone()
	absorb(t, clone, "scale", "cccww")
	assert.Empty(t, c.Correct('s'))
	assert.Equal(t, []int{0}, clone.Correct('s'))
	assert.Equal(t, []int{0}, c.Misplaced('c'))
}

func strings[T interface{ String() string }](in [lexicon.WordLength]T) [lexicon.WordLength]string {
	var ret [lexicon.WordLength]string
	for i, v := range in {
		ret[i] = v.String()
	}
	return ret
}
