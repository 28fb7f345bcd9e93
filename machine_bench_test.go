package fsmx_test

import (
	"testing"

	"github.com/comalice/fsmx"
)

func benchMachine(b *testing.B, opts ...fsmx.Option) *fsmx.Machine {
	b.Helper()
	m, err := fsmx.NewBuilder("s1").
		State("s1").On("go", "s2").
		State("s2").On("go", "s1").
		Build(opts...)
	if err != nil {
		b.Fatalf("Failed to create machine: %v", err)
	}
	return m
}

// BenchmarkTrigger measures a single event-driven move including the history append.
func BenchmarkTrigger(b *testing.B) {
	m := benchMachine(b, fsmx.WithHistoryLimit(1024))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Trigger("go"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkChangeState measures a direct move.
func BenchmarkChangeState(b *testing.B) {
	m := benchMachine(b, fsmx.WithHistoryLimit(1024))
	targets := [2]string{"s1", "s2"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.ChangeState(targets[i%2]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUndoRedo measures walking the history back and forth.
func BenchmarkUndoRedo(b *testing.B) {
	m := benchMachine(b)
	for range 100 {
		_ = m.Trigger("go")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !m.Undo() {
			b.Fatal("undo failed")
		}
		if !m.Redo() {
			b.Fatal("redo failed")
		}
	}
}

// BenchmarkTriggerMiss measures the rejected path.
func BenchmarkTriggerMiss(b *testing.B) {
	m := benchMachine(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Trigger("missing")
	}
}
