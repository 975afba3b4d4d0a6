package multiset

import "testing"

func TestOrderedAgreesWithCounted(t *testing.T) {
	a := OrderedFromString("abcd")
	b := OrderedFromString("bcd")
	if a.Size() != 3 || b.Size() != 2 {
		t.Fatalf("unexpected sizes: %d, %d", a.Size(), b.Size())
	}
	if got := IntersectSizeOrdered(a, b); got != 2 {
		t.Errorf("IntersectSizeOrdered = %d, want 2", got)
	}
	if got := SDCOrdered(a, b); got != 0.8 {
		t.Errorf("SDCOrdered = %v, want 0.8", got)
	}
}

func TestHashedAgreesWithCounted(t *testing.T) {
	a := HashedFromString("abcd")
	b := HashedFromString("bcd")
	if a.Size() != 3 || b.Size() != 2 {
		t.Fatalf("unexpected sizes: %d, %d", a.Size(), b.Size())
	}
	if got := IntersectSizeHashed(a, b); got != 2 {
		t.Errorf("IntersectSizeHashed = %d, want 2", got)
	}
	if got := SDCHashed(a, b); got != 0.8 {
		t.Errorf("SDCHashed = %v, want 0.8", got)
	}
}

func TestOrderedUnionWithRepetition(t *testing.T) {
	u := UnionOrdered(OrderedFromString("abcd"), OrderedFromString("bcd"))
	if u.Size() != 5 {
		t.Errorf("union size = %d, want 5", u.Size())
	}
	counts := map[string]int{}
	u.Each(func(b Bigram, c int) bool { counts[b.String()] = c; return true })
	want := map[string]int{"ab": 1, "bc": 2, "cd": 2}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("count(%s) = %d, want %d", k, counts[k], v)
		}
	}
}

func TestHashedUnionWithRepetition(t *testing.T) {
	u := UnionHashed(HashedFromString("abcd"), HashedFromString("bcd"))
	if u.Size() != 5 {
		t.Errorf("union size = %d, want 5", u.Size())
	}
	counts := map[string]int{}
	u.Each(func(b Bigram, c int) bool { counts[b.String()] = c; return true })
	want := map[string]int{"ab": 1, "bc": 2, "cd": 2}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("count(%s) = %d, want %d", k, counts[k], v)
		}
	}
}

func TestOrderedEmptySDC(t *testing.T) {
	if got := SDCOrdered(OrderedEmpty(), OrderedEmpty()); got != 0 {
		t.Errorf("SDCOrdered(empty, empty) = %v, want 0", got)
	}
}

func TestHashedEmptySDC(t *testing.T) {
	if got := SDCHashed(HashedEmpty(), HashedEmpty()); got != 0 {
		t.Errorf("SDCHashed(empty, empty) = %v, want 0", got)
	}
}

func TestHashedSelfIntersection(t *testing.T) {
	p := HashedFromString("abracadabra")
	if got := IntersectSizeHashed(p, p); got != p.Size() {
		t.Errorf("IntersectSizeHashed(p, p) = %d, want %d", got, p.Size())
	}
	if got := SDCHashed(p, p); got != 1 {
		t.Errorf("SDCHashed(p, p) = %v, want 1", got)
	}
}

func TestOrderedSelfIntersection(t *testing.T) {
	p := OrderedFromString("abracadabra")
	if got := IntersectSizeOrdered(p, p); got != p.Size() {
		t.Errorf("IntersectSizeOrdered(p, p) = %d, want %d", got, p.Size())
	}
	if got := SDCOrdered(p, p); got != 1 {
		t.Errorf("SDCOrdered(p, p) = %v, want 1", got)
	}
}

func TestStringRendering(t *testing.T) {
	if got := OrderedEmpty().String(); got != "bigram_multiset(size: 0, {})" {
		t.Errorf("empty Ordered String() = %q", got)
	}
	if got := HashedEmpty().String(); got != "unordered_bigram_multiset(size: 0, {})" {
		t.Errorf("empty Hashed String() = %q", got)
	}
	if got := OrderedFromString("ab").String(); got != "bigram_multiset(size: 1, {ab})" {
		t.Errorf("Ordered String() = %q", got)
	}
}
