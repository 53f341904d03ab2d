package device

import (
	"context"
	"runtime"
	"runtime/debug"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/mem"

	"genhost/pkg/types"
)

// CacheEmptier evicts cached accelerator blocks held by the runtime that
// owns the weights. The worker client implements it.
type CacheEmptier interface {
	EmptyCache(ctx context.Context) error
}

// Allocator implements manager.Allocator for this host.
type Allocator struct {
	emptier CacheEmptier
	log     zerolog.Logger
	// collect is replaced in tests.
	collect func()
}

// NewAllocator returns an Allocator. emptier may be nil when the runtime
// lives in-process and has no separate cache to evict.
func NewAllocator(emptier CacheEmptier, logger *zerolog.Logger) *Allocator {
	a := &Allocator{emptier: emptier, log: zerolog.Nop(), collect: freeMemory}
	if logger != nil {
		a.log = logger.With().Str("component", "allocator").Logger()
	}
	return a
}

func (a *Allocator) EmptyCache(ctx context.Context) error {
	if a.emptier == nil {
		return nil
	}
	return a.emptier.EmptyCache(ctx)
}

// Collect runs a full GC, returns freed pages to the OS and logs what the
// host has left.
func (a *Allocator) Collect(context.Context) {
	a.collect()
	hm, err := HostMemory()
	if err != nil {
		a.log.Debug().Err(err).Msg("host memory unavailable")
		return
	}
	a.log.Info().Str("event", "reclaim").
		Str("available", humanize.IBytes(hm.AvailableBytes)).
		Str("total", humanize.IBytes(hm.TotalBytes)).
		Float64("used_percent", hm.UsedPercent).
		Msg("memory reclaimed")
}

func freeMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}

// HostMemory reads the current host RAM statistics.
func HostMemory() (types.HostMemory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return types.HostMemory{}, err
	}
	return types.HostMemory{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
		UsedPercent:    vm.UsedPercent,
	}, nil
}
