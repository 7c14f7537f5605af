// pkg/pkgmgr/resolver_test.go
package pkgmgr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestResolver(r *fakeRunner) *Resolver {
	return NewResolver(NewInstaller(KindPacman, r, nil), nil)
}

func TestResolveCommitsToFirstSuccess(t *testing.T) {
	r := &fakeRunner{exitCodes: map[string]int{"lib-a": 1, "lib-b": 1}}
	res, err := newTestResolver(r).Resolve(context.Background(), []string{"lib-a", "lib-b", "lib-c", "lib-d"})

	require.NoError(t, err)
	require.Equal(t, "lib-c", res.Package)
	require.Len(t, res.Failed, 2)
	require.Equal(t, "lib-a", res.Failed[0].Package)
	require.Equal(t, "lib-b", res.Failed[1].Package)

	// Nothing after the first success is attempted.
	require.Len(t, r.calls, 3)
	require.Equal(t, "lib-c", r.calls[2].args[len(r.calls[2].args)-1])
}

func TestResolveFirstCandidateWins(t *testing.T) {
	r := &fakeRunner{}
	res, err := newTestResolver(r).Resolve(context.Background(), []string{"ncurses", "ncurses-devel"})

	require.NoError(t, err)
	require.Equal(t, "ncurses", res.Package)
	require.Empty(t, res.Failed)
	require.Len(t, r.calls, 1)
}

func TestResolveAllCandidatesFail(t *testing.T) {
	candidates := []string{"lib-a", "lib-b", "lib-c"}
	r := &fakeRunner{exitCodes: map[string]int{"lib-a": 1, "lib-b": 2, "lib-c": 100}}

	res, err := newTestResolver(r).Resolve(context.Background(), candidates)
	require.Error(t, err)

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Attempts, 3)
	for i, c := range candidates {
		require.Equal(t, c, agg.Attempts[i].Package)
	}
	require.Equal(t, 100, agg.Attempts[2].Code)
	require.Contains(t, agg.Error(), "lib-a, lib-b, lib-c")

	// Every candidate attempted exactly once, in list order.
	require.Len(t, r.calls, 3)
	for i, c := range candidates {
		require.Equal(t, c, r.calls[i].args[len(r.calls[i].args)-1])
	}

	require.Empty(t, res.Package)
	require.Len(t, res.Failed, 3)
}

func TestResolveUnknownKindFailsFast(t *testing.T) {
	r := &fakeRunner{}
	resolver := NewResolver(NewInstaller(KindUnknown, r, nil), nil)

	_, err := resolver.Resolve(context.Background(), []string{"lib-a", "lib-b"})

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Attempts, 2)
	for _, a := range agg.Attempts {
		require.Equal(t, CodeUnknownManager, a.Code)
	}
	require.Empty(t, r.calls)
}

func TestResolveErrorIsNotFatalSentinel(t *testing.T) {
	// An exhausted candidate list is reported but the caller decides
	// fatality; the error must stay inspectable, not wrapped away.
	_, err := newTestResolver(&fakeRunner{exitCodes: map[string]int{"x": 1}}).
		Resolve(context.Background(), []string{"x"})

	var agg *AggregateError
	require.True(t, errors.As(err, &agg))
}
