package isolated

import (
	"context"
	"testing"
)

func BenchmarkListAppend(b *testing.B) {
	l := NewList[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

func BenchmarkListAppendParallel(b *testing.B) {
	l := NewList[int]()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Append(1)
		}
	})
}

func BenchmarkListAt(b *testing.B) {
	l := NewList[int]()
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.At(i % 1024)
	}
}

func BenchmarkSetAddParallel(b *testing.B) {
	s := NewSet[int]()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Add(i)
			i++
		}
	})
}

func BenchmarkLaneSubmit(b *testing.B) {
	l := NewLane()
	defer l.Close()
	ctx := context.Background()

	fn := func() error { return nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Submit(ctx, fn); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLaneCall(b *testing.B) {
	l := NewLane()
	defer l.Close()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Call(ctx, l, func() (int, error) { return i, nil }); err != nil {
			b.Fatal(err)
		}
	}
}
