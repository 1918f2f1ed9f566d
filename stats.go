package orrery

import (
	"log/slog"
	"time"

	"github.com/gogpu/orrery/raster"
)

// FrameStats describes the work done for one frame.
type FrameStats struct {
	Frame    uint64
	Width    int
	Height   int
	Time     float32
	Entities int
	Vertices int
	Raster   raster.Stats
	// SkyPixels is the number of pixels filled by the skybox.
	SkyPixels int

	Geometry time.Duration
	Sky      time.Duration
	Post     time.Duration
	Total    time.Duration
}

// Coverage returns the fraction of the frame covered by geometry.
func (s FrameStats) Coverage() float64 {
	n := s.Width * s.Height
	if n == 0 {
		return 0
	}
	return float64(n-s.SkyPixels) / float64(n)
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", s.Frame),
		slog.Int("entities", s.Entities),
		slog.Int("triangles", s.Raster.Triangles),
		slog.Int("drawn", s.Raster.Drawn()),
		slog.Int("culled", s.Raster.Culled),
		slog.Int("fragments", s.Raster.Written),
		slog.Int("sky", s.SkyPixels),
		slog.Duration("geometry", s.Geometry),
		slog.Duration("sky_time", s.Sky),
		slog.Duration("post", s.Post),
		slog.Duration("total", s.Total),
	)
}
