package prefix_test

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/ErikKalkoken/go-set"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/typequirks/prefix"
)

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]bool
		p    string
		want map[string]bool
	}{
		{
			name: "textures",
			in:   map[string]bool{"stick": true, "ball": true, "soup": false},
			p:    "fish_",
			want: map[string]bool{"fish_stick": true, "fish_ball": true, "fish_soup": false},
		},
		{
			name: "empty prefix",
			in:   map[string]bool{"a": true},
			p:    "",
			want: map[string]bool{"a": true},
		},
		{
			name: "empty map",
			in:   map[string]bool{},
			p:    "x_",
			want: map[string]bool{},
		},
		{
			name: "nil map",
			in:   nil,
			p:    "x_",
			want: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := prefix.Prefix(tt.in, tt.p)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Prefix() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrefixLeavesInputUntouched(t *testing.T) {
	t.Parallel()
	in := map[string]bool{"stick": true, "soup": false}
	_ = prefix.Prefix(in, "fish_")
	assert.Equal(t, map[string]bool{"stick": true, "soup": false}, in)
}

func TestPrefixNamedKeyType(t *testing.T) {
	t.Parallel()
	type color string
	got := prefix.Prefix(map[color]int{"red": 1, "blue": 2}, "c_")
	assert.Equal(t, map[string]int{"c_red": 1, "c_blue": 2}, got)
}

func TestPrefixKeySet(t *testing.T) {
	t.Parallel()
	f := func(m map[string]bool, p string) bool {
		got := prefix.Prefix(m, p)
		if len(got) != len(m) {
			return false
		}
		keys := make([]string, 0, len(m))
		for k, v := range m {
			keys = append(keys, p+k)
			if gv, ok := got[p+k]; !ok || gv != v {
				return false
			}
		}
		return prefix.Keys(got).Equal(set.Of(keys...))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestStripRoundTrip(t *testing.T) {
	t.Parallel()
	f := func(m map[string]int, p string) bool {
		got, err := prefix.Strip(prefix.Prefix(m, p), p)
		if err != nil {
			return false
		}
		if m == nil {
			return len(got) == 0
		}
		return cmp.Equal(m, got)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	t.Run("removes prefix", func(t *testing.T) {
		t.Parallel()
		got, err := prefix.Strip(map[string]bool{"fish_stick": true, "fish_soup": false}, "fish_")
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"stick": true, "soup": false}, got)
	})

	t.Run("key without prefix", func(t *testing.T) {
		t.Parallel()
		_, err := prefix.Strip(map[string]bool{"fish_stick": true, "ball": true}, "fish_")
		require.ErrorIs(t, err, prefix.ErrMissingPrefix)
		assert.True(t, strings.Contains(err.Error(), `"ball"`), err.Error())
	})
}

func TestKeys(t *testing.T) {
	t.Parallel()
	got := prefix.Keys(map[string]bool{"fish_stick": true, "fish_ball": false})
	assert.True(t, got.Equal(set.Of("fish_stick", "fish_ball")), "got %v", got)
	assert.Equal(t, 0, prefix.Keys[bool](nil).Size())
}
