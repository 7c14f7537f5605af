// hostprep_test.go
package hostprep

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectReturnsADefinedKind(t *testing.T) {
	// Against the real host we can't assume which manager is installed,
	// only that detection lands in the closed set and is idempotent.
	kinds := map[Kind]bool{
		KindPacman:  true,
		KindApt:     true,
		KindDnf:     true,
		KindApk:     true,
		KindZypper:  true,
		KindUnknown: true,
	}

	first := Detect()
	require.True(t, kinds[first])
	require.Equal(t, first, Detect())
}

func TestNewUsesDefaultsWhenConfigNil(t *testing.T) {
	p := New(nil, io.Discard)
	require.NotNil(t, p)
	require.True(t, kindsContains(p.Kind()))
}

func kindsContains(k Kind) bool {
	switch k {
	case KindPacman, KindApt, KindDnf, KindApk, KindZypper, KindUnknown:
		return true
	}
	return false
}
