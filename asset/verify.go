package asset

import (
	"image"
	"log"

	"github.com/lixenwraith/vi-pet/engine"
)

// Check names one asset read performed by Verify
type Check struct {
	Name   string
	Region *image.Rectangle // nil checks the whole image
	Owner  string           // animation or purpose the asset serves
}

// Result is the outcome of one Check
type Result struct {
	Check
	Err error
}

// Report collects Verify results
type Report struct {
	Results []Result
}

// OK reports whether every check passed
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns only the failing results
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// CatalogChecks lists the reads needed to prove every animation is drawable
// Sprite sheets are checked at the frame 0 region, sequences at every frame
func CatalogChecks(catalog *engine.Catalog) []Check {
	var checks []Check
	seen := make(map[string]bool)

	for _, d := range catalog.All() {
		switch d.Kind {
		case engine.KindSpriteSheet:
			name, src, ok := d.FrameSource(0)
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			checks = append(checks, Check{Name: name, Region: src, Owner: d.ID.String()})
		case engine.KindFrameSequence:
			for _, name := range d.Assets() {
				if seen[name] {
					continue
				}
				seen[name] = true
				checks = append(checks, Check{Name: name, Owner: d.ID.String()})
			}
		}
	}
	return checks
}

// Verify loads every catalog asset plus extra names and logs each outcome
// Failures are reported, never fatal
func Verify(store *Store, catalog *engine.Catalog, extra ...string) Report {
	checks := CatalogChecks(catalog)
	for _, name := range extra {
		checks = append(checks, Check{Name: name, Owner: "ui"})
	}

	report := Report{Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		_, err := store.Region(c.Name, c.Region)
		if err != nil {
			log.Printf("asset check failed: %s (%s): %v", c.Name, c.Owner, err)
		} else {
			log.Printf("asset check ok: %s (%s)", c.Name, c.Owner)
		}
		report.Results = append(report.Results, Result{Check: c, Err: err})
	}

	log.Printf("asset verification in %s: %d checked, %d failed, %d images cached",
		store.Root(), len(report.Results), len(report.Failed()), store.Cached())
	return report
}
