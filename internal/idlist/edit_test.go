package idlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want List
	}{
		{raw: "", want: List{}},
		{raw: "   ", want: List{}},
		{raw: "x,y,z", want: List{"x", "y", "z"}},
		{raw: "a, b ,, c,", want: List{"a", "b", "c"}},
		{raw: ",,,", want: List{}},
		{raw: " 12 ,12", want: List{"12", "12"}},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got := ParseCommaSeparated(tc.raw)

			require.NotNil(t, got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseCommaSeparated(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestList_Add(t *testing.T) {
	t.Parallel()

	original := List{"1", "2"}

	got := original.Add("2", "3", "3", "4")

	if diff := cmp.Diff(List{"1", "2", "3", "4"}, got); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, List{"1", "2"}, original, "Add must not modify the receiver")
	require.Equal(t, List{"a"}, List(nil).Add("a"))
}

func TestList_Remove(t *testing.T) {
	t.Parallel()

	original := List{"1", "2", "1", "3"}

	got := original.Remove("1", "3", "missing")

	if diff := cmp.Diff(List{"2", "1"}, got); diff != "" {
		t.Errorf("Remove mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, List{"1", "2", "1", "3"}, original, "Remove must not modify the receiver")
	require.Empty(t, List{"a"}.Remove("a"))
}
