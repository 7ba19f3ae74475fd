// Command memoize demonstrates the core use case: caching a derived
// value and recomputing it only when a dependency's tag has moved.
package main

import (
	"log/slog"

	versiontag "github.com/danylaporte/version-tag"
	"github.com/danylaporte/version-tag/logging"
)

// dep is an upstream value carrying its own version tag.
type dep struct {
	value int
	tag   versiontag.Tag
}

func (d *dep) set(v int) {
	d.value = v
	d.tag.Invalidate()
}

// report derives a value from two dependencies and caches it.
type report struct {
	total int
	seen  versiontag.Tag // combined tag of the inputs at last compute
}

// refresh recomputes the total only if a dependency changed since the
// last computation. Returns true when a recomputation happened.
func (r *report) refresh(x, y *dep) bool {
	actual := versiontag.Combine(x.tag, y.tag)
	if actual.Equal(r.seen) {
		return false
	}

	r.total = x.value + y.value
	r.seen = actual
	return true
}

func main() {
	logging.Init(logging.Config{Level: "info", Format: "text", Environment: "dev"})
	log := logging.Default().WithComponent(logging.Component("memoize-demo"))

	x := &dep{value: 1, tag: versiontag.New()}
	y := &dep{value: 2, tag: versiontag.New()}
	r := &report{seen: versiontag.Zero()} // never computed yet

	log.Info("first refresh", slog.Bool("recomputed", r.refresh(x, y)), slog.Int("total", r.total))
	log.Info("no change", slog.Bool("recomputed", r.refresh(x, y)), slog.Int("total", r.total))

	x.set(10)

	log.Info("after x changed", slog.Bool("recomputed", r.refresh(x, y)), slog.Int("total", r.total))
	log.Info("steady state", slog.Bool("recomputed", r.refresh(x, y)), slog.Int("total", r.total))
}
