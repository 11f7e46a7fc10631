package core

import (
	"strings"
	"testing"
)

func TestRecordPool(t *testing.T) {
	r := GetRecord()
	r.Message = "test"
	r.Level = ErrorLevel
	r.Line = 42
	r.Source = "somefile"
	PutRecord(r)

	r2 := GetRecord()
	if r2.Message != nil {
		t.Errorf("Expected recycled record message to be nil, got: %v", r2.Message)
	}
	if r2.Level != VerboseLevel {
		t.Errorf("Expected recycled record level to be zero, got: %v", r2.Level)
	}
	if r2.Source != "" || r2.Line != 0 {
		t.Errorf("Expected recycled record caller info to be zero, got: %q/%d", r2.Source, r2.Line)
	}
	PutRecord(r2)
}

func TestPutRecord_Nil(t *testing.T) {
	// Must not panic
	PutRecord(nil)
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)

	if !caller.Defined {
		t.Fatal("Expected caller to be defined")
	}
	if caller.Stem != "record_test" {
		t.Errorf("Expected stem 'record_test', got: %q", caller.Stem)
	}
	if strings.Contains(caller.Stem, ".go") {
		t.Errorf("Expected .go suffix stripped, got: %q", caller.Stem)
	}
	if !strings.HasSuffix(caller.Function, "()") {
		t.Errorf("Expected function label with () suffix, got: %q", caller.Function)
	}
	if strings.Contains(caller.Function, "/") {
		t.Errorf("Expected package path stripped, got: %q", caller.Function)
	}
	if caller.Line <= 0 {
		t.Errorf("Expected positive line number, got: %d", caller.Line)
	}
}

func TestGetCaller_TooDeep(t *testing.T) {
	caller := GetCaller(500)
	if caller.Defined {
		t.Error("Expected undefined caller for absurd skip depth")
	}
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/x/pkg.Func", "Func()"},
		{"github.com/x/pkg.(*T).Method", "(*T).Method()"},
		{"main.main", "main()"},
	}

	for _, tt := range tests {
		if got := shortFuncName(tt.in); got != tt.want {
			t.Errorf("shortFuncName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
