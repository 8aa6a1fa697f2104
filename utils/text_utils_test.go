package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Blue Summer-Dress, size 42!")
	want := []string{"blue", "summer", "dress", "size", "42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}

	if len(Tokenize("")) != 0 {
		t.Errorf("Tokenize(\"\") should be empty")
	}
}

func TestDeduplicateSlice(t *testing.T) {
	got := DeduplicateSlice([]string{"a", "b", " a ", "", "b", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeduplicateSlice() = %v, want %v", got, want)
	}
}

func TestCalculateTokens(t *testing.T) {
	// 2个中文字符(4) + 2个英文单词(2)
	if got := CalculateTokens("你好 hello world"); got != 6 {
		t.Errorf("CalculateTokens() = %d, want 6", got)
	}
	if got := CalculateTokens(""); got != 0 {
		t.Errorf("CalculateTokens(\"\") = %d, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	s := "the quick brown fox jumps"
	got := Truncate(s, 15)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() = %q, want ... suffix", got)
	}
	if len(got) > 18 {
		t.Errorf("Truncate() too long: %q", got)
	}

	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Truncate() should not change short strings, got %q", got)
	}
}

func TestIndexOf(t *testing.T) {
	slice := []string{"x", "y", "z"}
	if got := IndexOf(slice, "y"); got != 1 {
		t.Errorf("IndexOf() = %d, want 1", got)
	}
	if got := IndexOf(slice, "missing"); got != -1 {
		t.Errorf("IndexOf() = %d, want -1", got)
	}
}

func TestCalculateMD5(t *testing.T) {
	// 已知的MD5测试向量
	if got := CalculateMD5("hello"); got != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("CalculateMD5() = %s", got)
	}
}

func TestCalculateSignature(t *testing.T) {
	got := CalculateSignature("secret", "1234")
	want := CalculateMD5("secret1234")
	if got != want {
		t.Errorf("CalculateSignature() = %s, want %s", got, want)
	}
}
