package main

import (
	"runtime"

	"github.com/dustin/go-humanize"
)

type allocCount struct {
	mallocs uint64
	bytes   uint64
}

func readAllocs() allocCount {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return allocCount{mallocs: ms.Mallocs, bytes: ms.TotalAlloc}
}

func (a allocCount) since(b allocCount) allocCount {
	return allocCount{mallocs: a.mallocs - b.mallocs, bytes: a.bytes - b.bytes}
}

func (a allocCount) log() {
	theLog.Info("allocations", "count", a.mallocs, "bytes", humanize.Bytes(a.bytes))
}
