package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitTagNames(t *testing.T) {
	tests := []struct {
		cell string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"leader", []string{"leader"}},
		{"leader,medic", []string{"leader", "medic"}},
		{"组长，卫生员", []string{"组长", "卫生员"}},
		{" leader ， medic ", []string{"leader", "medic"}},
	}
	for _, tt := range tests {
		if got := SplitTagNames(tt.cell); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTagNames(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestGradePrefix(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"2023级5班", "2023"},
		{"2024级1班", "2024"},
		{"  2023级5班  ", "2023"},
		{"高三2班", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GradePrefix(tt.class); got != tt.want {
			t.Errorf("GradePrefix(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestReadAllLimit(t *testing.T) {
	data, err := ReadAllLimit(strings.NewReader("hello"), 10)
	if err != nil {
		t.Fatalf("ReadAllLimit() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadAllLimit() = %q, want %q", data, "hello")
	}

	if _, err := ReadAllLimit(strings.NewReader("hello world"), 5); err == nil {
		t.Error("ReadAllLimit() accepted an oversized payload")
	}
}
