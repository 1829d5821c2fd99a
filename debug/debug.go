package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Alloc  bool
	Source bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("FLOATRUN_DEBUG_SCAN")
	d.Alloc = boolEnv("FLOATRUN_DEBUG_ALLOC")
	d.Source = boolEnv("FLOATRUN_DEBUG_SOURCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Scan enables per-scan debug logging.
func Scan() bool {
	return d.Scan
}

// Alloc forces allocation statistics after every scan.
func Alloc() bool {
	return d.Alloc
}

// Source logs how each input was loaded.
func Source() bool {
	return d.Source
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
