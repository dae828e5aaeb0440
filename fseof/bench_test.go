package fseof_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/fseof/fseof"
)

func BenchmarkRun(b *testing.B) {
	m := threeTrend(b)
	cfg := baseConfig(20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fseof.Run(context.Background(), m, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Variability(b *testing.B) {
	m := threeTrend(b)
	cfg := baseConfig(10)
	cfg.ComputeVariability = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fseof.Run(context.Background(), m, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	ft := fseof.NewFluxTable(ids, 51)
	for s := 0; s < 51; s++ {
		row := make(map[string]float64, len(ids))
		for j, id := range ids {
			row[id] = float64(s * (j%3 - 1))
		}
		_ = ft.SetRow(s, row)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fseof.Classify(ft, fseof.Max, fseof.DefaultClassifierOptions())
	}
}
