package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple sentence", "Cats and dogs. Cats sleep.", []string{"cats", "and", "dogs", "cats", "sleep"}},
		{"punctuation split", "hello,world;foo-bar", []string{"hello", "world", "foo", "bar"}},
		{"underscore kept", "snake_case stays one_token", []string{"snake_case", "stays", "one_token"}},
		{"digits kept", "python3 v2 100", []string{"python3", "v2", "100"}},
		{"case folded", "Python PYTHON python", []string{"python", "python", "python"}},
		{"empty input", "", nil},
		{"only separators", " .,!? \n\t", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFrequencies(t *testing.T) {
	got := Frequencies("Cats and dogs. Cats sleep.")
	want := map[string]int{"cats": 2, "and": 1, "dogs": 1, "sleep": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequencies = %v, want %v", got, want)
	}
}
