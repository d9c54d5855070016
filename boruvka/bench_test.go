package boruvka_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parmst/boruvka"
)

// BenchmarkKruskal measures the serial reference on 20k vertices and 200k edges.
func BenchmarkKruskal(b *testing.B) {
	s := buildMediumStore(b, 20_000, 200_000, 1_000_000, 42) // pre‐build store once
	b.ResetTimer()                                           // exclude store construction
	for i := 0; i < b.N; i++ {
		_, _, _ = boruvka.Kruskal(s)
	}
}

// BenchmarkBoruvka measures the engine on the same store across worker counts
// and both slot kinds. The engine is built once so only Run is timed.
func BenchmarkBoruvka(b *testing.B) {
	s := buildMediumStore(b, 20_000, 200_000, 1_000_000, 42)
	for _, slots := range []boruvka.Slots{boruvka.SlotsMutex, boruvka.SlotsAtomic} {
		for _, workers := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("%s/t%d", slots, workers), func(b *testing.B) {
				eng, err := boruvka.NewEngine(s,
					boruvka.WithWorkers(workers),
					boruvka.WithSlots(slots),
					boruvka.WithPartition(boruvka.PartitionBlocks),
				)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := eng.Run(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
