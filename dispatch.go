package xoofff

import "golang.org/x/sys/cpu"

// Bulk kernels selected at init. The wide kernels are portable Go; the CPU
// flags only pick the batch width whose register pressure the target can
// absorb. The four-way width is the universal baseline.
var (
	absorbBulk  = absorbBlocksX4
	squeezeBulk = squeezeBlocksX4

	parallelWidth = 4
)

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		absorbBulk = absorbBlocksX16
		squeezeBulk = squeezeBlocksX16
		parallelWidth = 16
	case cpu.X86.HasAVX2:
		absorbBulk = absorbBlocksX8
		squeezeBulk = squeezeBlocksX8
		parallelWidth = 8
	}
}

// ParallelWidth reports how many 48-byte blocks the bulk absorb and squeeze
// paths process per permutation on this machine.
func ParallelWidth() int {
	return parallelWidth
}
