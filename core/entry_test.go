package core

import (
	"errors"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{AllLevel, "ALL"},
		{TraceLevel, "TRACE"},
		{FinerLevel, "FINER"},
		{DebugLevel, "DEBUG"},
		{ConfigLevel, "CONFIG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevels_Ascending(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("Levels() not ascending at %d: %v <= %v", i, levels[i], levels[i-1])
		}
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	e1.Message = "test"
	e1.Category = "app"
	e1.Err = errors.New("boom")
	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if e2.Category != "" {
		t.Errorf("Expected empty category after pool reset, got %q", e2.Category)
	}
	if e2.Err != nil {
		t.Errorf("Expected nil error after pool reset, got %v", e2.Err)
	}
	if e2.Time.IsZero() {
		t.Error("Expected GetEntry to stamp the time")
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)

	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}
	if caller.File == "" {
		t.Error("Expected non-empty file")
	}
	if caller.ShortFile == "" {
		t.Error("Expected non-empty short file")
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}

func TestGetUserCaller(t *testing.T) {
	caller := GetUserCaller()

	if !caller.Defined {
		t.Fatal("GetUserCaller() returned undefined CallerInfo")
	}
	if caller.ShortFile != "entry_test.go" {
		t.Errorf("Expected the test file, got %q", caller.ShortFile)
	}
	if !strings.HasSuffix(caller.Function, "TestGetUserCaller") {
		t.Errorf("Expected the test function, got %q", caller.Function)
	}
}

func TestUserCallerDepth(t *testing.T) {
	if got := UserCallerDepth(); got != 0 {
		t.Errorf("Expected depth 0 from test code, got %d", got)
	}
}
