package clog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) Infof(format string, args ...interface{}) {
	r.lines = append(r.lines, "I "+fmt.Sprintf(format, args...))
}
func (r *recorder) Warningf(format string, args ...interface{}) {
	r.lines = append(r.lines, "W "+fmt.Sprintf(format, args...))
}
func (r *recorder) Errorf(format string, args ...interface{}) {
	r.lines = append(r.lines, "E "+fmt.Sprintf(format, args...))
}
func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.lines = append(r.lines, "F "+fmt.Sprintf(format, args...))
}

func TestSetLogger(t *testing.T) {
	r := &recorder{}
	SetLogger(r)
	defer SetLogger(stdlog{})

	Infof("loaded %d", 3)
	Warningf("w")
	Errorf("e")
	require.Equal(t, []string{"I loaded 3", "W w", "E e"}, r.lines)

	SetLogger(nil)
	Infof("dropped")
	require.Len(t, r.lines, 3)
}

func TestVerbosity(t *testing.T) {
	SetV(0)
	require.False(t, V(1))
	SetV(2)
	require.True(t, V(1))
	require.True(t, V(2))
	require.False(t, V(3))
	SetV(0)
}
