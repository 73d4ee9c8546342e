package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, Token("<vector>"), Wrap("vector"))
	assert.Equal(t, Token("<stl_map.h>"), Wrap("stl_map.h"))
}

func TestSet(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add("<vector>"))
	assert.False(t, s.Add("<vector>"))
	assert.True(t, s.Add("<deque>"))

	assert.True(t, s.Has("<deque>"))
	assert.False(t, s.Has("<list>"))
	assert.Equal(t, []Token{"<deque>", "<vector>"}, s.Sorted())
	assert.Equal(t, "<deque>,<vector>", s.Join())
	assert.Equal(t, "{<deque>,<vector>}", s.String())
}

func TestSetEqual(t *testing.T) {
	a := NewSet("<cmath>", "<cstdlib>")
	b := NewSet("<cstdlib>", "<cmath>")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewSet("<cmath>")))
	assert.False(t, a.Equal(NewSet("<cmath>", "<complex>")))
	assert.True(t, NewSet().Equal(nil))
}
