package main

import (
	"errors"
	"fmt"

	"github.com/joshuapare/arenakit/region"
)

// regionStats is the metadata regionctl reports about a region buffer.
type regionStats struct {
	Kind      string `json:"kind"`
	Size      int    `json:"size"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
	Align     int    `json:"align"`
	Count     int    `json:"count,omitempty"`
}

// attachAny attaches to a region buffer of either kind, trying the arena
// signature first.
func attachAny(b []byte) (region.Allocator, regionStats, error) {
	a, err := region.AttachArena(b)
	if err == nil {
		return a, regionStats{
			Kind:      region.KindArena.String(),
			Size:      a.Size(),
			Used:      a.Used(),
			Available: a.Available(),
			Align:     a.Align(),
		}, nil
	}
	if !errors.Is(err, region.ErrBadSignature) {
		return nil, regionStats{}, err
	}

	sg, err := region.AttachSurge(b)
	if err != nil {
		if errors.Is(err, region.ErrBadSignature) {
			return nil, regionStats{}, fmt.Errorf("not a region file: %w", err)
		}
		return nil, regionStats{}, err
	}
	return sg, regionStats{
		Kind:      region.KindSurge.String(),
		Size:      sg.Size(),
		Used:      sg.Used(),
		Available: sg.Available(),
		Align:     sg.Align(),
		Count:     sg.Count(),
	}, nil
}
