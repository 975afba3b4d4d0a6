package bigrams

import "testing"

func TestFromStringSize(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"a", 0},
		{"ab", 1},
		{"abcd", 3},
		{"Sørensen", 7},
	}
	for _, c := range cases {
		got := FromString(c.s).Size()
		if got != c.want {
			t.Errorf("FromString(%q).Size() = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestFromStringBigramsAbcd(t *testing.T) {
	p := FromString("abcd")
	var got []string
	p.Each(func(b Bigram, count int) bool {
		got = append(got, b.String())
		if count != 1 {
			t.Errorf("count(%s) = %d, want 1", b, count)
		}
		return true
	})
	want := []string{"ab", "bc", "cd"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEmptySDC(t *testing.T) {
	if got := SDC(Empty(), Empty()); got != 0 {
		t.Errorf("SDC(empty, empty) = %v, want 0", got)
	}
}

func TestTinyScenario(t *testing.T) {
	a := FromString("abcd")
	b := FromString("bcd")
	if a.Size() != 3 || b.Size() != 2 {
		t.Fatalf("unexpected sizes: %d, %d", a.Size(), b.Size())
	}
	if got := IntersectSize(a, b); got != 2 {
		t.Errorf("IntersectSize = %d, want 2", got)
	}
	if got := SDC(a, b); got != 0.8 {
		t.Errorf("SDC = %v, want 0.8", got)
	}
}

func TestUnionWithRepetition(t *testing.T) {
	a := FromString("abcd")
	b := FromString("bcd")
	u := Union(a, b)
	if u.Size() != 5 {
		t.Errorf("union size = %d, want 5", u.Size())
	}

	want := map[string]int{"ab": 1, "bc": 2, "cd": 2}
	seen := map[string]int{}
	u.Each(func(b Bigram, count int) bool {
		seen[b.String()] = count
		return true
	})
	for k, v := range want {
		if seen[k] != v {
			t.Errorf("count(%s) = %d, want %d", k, seen[k], v)
		}
	}
}

func TestUnionInPlaceEmptyLHS(t *testing.T) {
	p := Empty()
	other := FromString("abcd")
	p.UnionInPlace(other)
	if p.Size() != other.Size() {
		t.Errorf("union-in-place from empty lost size: got %d want %d", p.Size(), other.Size())
	}
}

func TestIntersectSizeSelf(t *testing.T) {
	p := FromString("abracadabra")
	if got := IntersectSize(p, p); got != p.Size() {
		t.Errorf("IntersectSize(p, p) = %d, want %d", got, p.Size())
	}
	if got := SDC(p, p); got != 1 {
		t.Errorf("SDC(p, p) = %v, want 1", got)
	}
}

func TestIntersectSizeCommutative(t *testing.T) {
	a := FromString("hello")
	b := FromString("world")
	if IntersectSize(a, b) != IntersectSize(b, a) {
		t.Errorf("intersect size not commutative")
	}
}

func TestSDCBounds(t *testing.T) {
	a := FromString("hello")
	b := FromString("world")
	got := SDC(a, b)
	if got < 0 || got > 1 {
		t.Errorf("SDC out of bounds: %v", got)
	}
}

func TestSingleCharAlwaysZeroSDC(t *testing.T) {
	a := FromString("x")
	b := FromString("x")
	if got := SDC(a, b); got != 0 {
		t.Errorf("SDC of two single-char strings = %v, want 0", got)
	}
}

func TestStringRendering(t *testing.T) {
	if got := Empty().String(); got != "bigrams(size: 0, {})" {
		t.Errorf("empty String() = %q", got)
	}
	got := FromString("ab").String()
	if got != "bigrams(size: 1, {ab: 1})" {
		t.Errorf("String() = %q", got)
	}
}
