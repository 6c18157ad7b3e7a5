package service

import (
	"testing"
)

func TestGenerateBaseCode(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  string
	}{
		{"Somchai Jaidee", "0812345678", "SOM5678"},
		{"somchai jaidee", "081-234-5678", "SOM5678"},
		{"  Naruemon Srisuk ", "+66 89 876 5432", "NAR5432"},
		// 姓名不足 3 个拉丁字母时使用固定前缀
		{"สมชาย ใจดี", "0812345678", "AIYA5678"},
		{"Ng", "0812345678", "AIYA5678"},
		// 电话不足 4 位时使用全部数字
		{"Somchai", "12", "SOM12"},
	}

	for _, tc := range cases {
		if got := GenerateBaseCode(tc.name, tc.phone); got != tc.want {
			t.Fatalf("GenerateBaseCode(%q, %q) = %q, want %q", tc.name, tc.phone, got, tc.want)
		}
	}
}

func TestGenerateBaseCodeDeterministic(t *testing.T) {
	first := GenerateBaseCode("Somchai Jaidee", "0812345678")
	for i := 0; i < 10; i++ {
		if got := GenerateBaseCode("Somchai Jaidee", "0812345678"); got != first {
			t.Fatalf("expected deterministic base code, got %q then %q", first, got)
		}
	}
}

func TestSuggestCodeFirstCandidateFree(t *testing.T) {
	probe := func(code string) (bool, error) { return false, nil }

	got, err := suggestCode("Somchai Jaidee", "0812345678", probe)
	if err != nil {
		t.Fatalf("suggest code failed: %v", err)
	}
	if got.Code != "SOM5678" {
		t.Fatalf("expected base candidate SOM5678, got %q", got.Code)
	}
	if got.Exhausted {
		t.Fatalf("expected not exhausted for free base candidate")
	}
}

func TestSuggestCodeSkipTakenCandidates(t *testing.T) {
	taken := map[string]bool{"SOM5678": true, "SOM56781": true}
	probe := func(code string) (bool, error) { return taken[code], nil }

	got, err := suggestCode("Somchai Jaidee", "0812345678", probe)
	if err != nil {
		t.Fatalf("suggest code failed: %v", err)
	}
	if got.Code != "SOM56782" {
		t.Fatalf("expected suffixed candidate SOM56782, got %q", got.Code)
	}
	if got.Exhausted {
		t.Fatalf("expected not exhausted while a candidate remains")
	}
}

func TestSuggestCodeExhausted(t *testing.T) {
	probe := func(code string) (bool, error) { return true, nil }

	got, err := suggestCode("Somchai Jaidee", "0812345678", probe)
	if err != nil {
		t.Fatalf("suggest code failed: %v", err)
	}
	if !got.Exhausted {
		t.Fatalf("expected exhausted when every candidate is taken")
	}
	if got.Code == "" {
		t.Fatalf("expected last candidate returned even when exhausted")
	}
}
