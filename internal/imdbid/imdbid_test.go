package imdbid_test

import (
	"testing"

	"rymgap/internal/imdbid"
)

func TestFromSequencePadding(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "tt0000000"},
		{1, "tt0000001"},
		{9999999, "tt9999999"},
		{10000000, "tt10000000"},
		{123456789, "tt123456789"},
	}
	for _, tc := range cases {
		got, err := imdbid.FromSequence(tc.n)
		if err != nil {
			t.Fatalf("FromSequence(%d) returned error: %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("FromSequence(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFromSequenceLength(t *testing.T) {
	for _, n := range []int64{0, 7, 42, 9999999} {
		id, err := imdbid.FromSequence(n)
		if err != nil {
			t.Fatalf("FromSequence(%d) returned error: %v", n, err)
		}
		if len(id) != 9 {
			t.Errorf("FromSequence(%d) = %q, want length 9", n, id)
		}
	}
}

func TestFromSequenceInjective(t *testing.T) {
	seen := make(map[string]int64)
	for _, n := range []int64{0, 1, 10, 100, 1000000, 9999999, 10000000, 10000001} {
		id, err := imdbid.FromSequence(n)
		if err != nil {
			t.Fatalf("FromSequence(%d) returned error: %v", n, err)
		}
		if prev, ok := seen[id]; ok {
			t.Fatalf("FromSequence(%d) and FromSequence(%d) both produced %q", prev, n, id)
		}
		seen[id] = n
	}
}

func TestFromSequenceNegative(t *testing.T) {
	if _, err := imdbid.FromSequence(-1); err == nil {
		t.Fatal("expected error for negative sequence number")
	}
}

func TestFromString(t *testing.T) {
	got, err := imdbid.FromString(" 72 ")
	if err != nil {
		t.Fatalf("FromString returned error: %v", err)
	}
	if got != "tt0000072" {
		t.Errorf("FromString(\" 72 \") = %q, want tt0000072", got)
	}

	for _, bad := range []string{"", "abc", "12x", "1.5"} {
		if _, err := imdbid.FromString(bad); err == nil {
			t.Errorf("FromString(%q) succeeded, want error", bad)
		}
	}
}
