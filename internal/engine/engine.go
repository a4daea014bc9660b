package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/keytween/internal/config"
	"github.com/ivlev/keytween/internal/system"
	"github.com/ivlev/keytween/internal/timeline"
	"github.com/ivlev/keytween/internal/tween"
)

// Sample is the resolved pose of a frame at one playhead position.
type Sample struct {
	Position         int                  `yaml:"position" json:"position"`                 // relative to the frame
	TimelinePosition int                  `yaml:"timelinePosition" json:"timelinePosition"` // absolute
	Transformation   tween.Transformation `yaml:"transformation" json:"transformation"`
}

// Track holds every sample of one frame.
type Track struct {
	FrameID    string   `yaml:"frameId" json:"frameId"`
	LayerIndex int      `yaml:"layerIndex" json:"layerIndex"`
	Start      int      `yaml:"start" json:"start"`
	Samples    []Sample `yaml:"samples" json:"samples"`
}

// FrameSample is the pose of one frame at a timeline position.
type FrameSample struct {
	FrameID        string               `json:"frameId"`
	LayerIndex     int                  `json:"layerIndex"`
	Transformation tween.Transformation `json:"transformation"`
}

// PositionSamples lists every frame pose at one timeline position.
type PositionSamples struct {
	Position int           `json:"position"`
	Frames   []FrameSample `json:"frames"`
}

// BakeProject samples a timeline at every playhead position.
type BakeProject struct {
	Config   *config.Config
	Timeline *timeline.Timeline

	report Report
}

func NewBakeProject(cfg *config.Config, tl *timeline.Timeline) *BakeProject {
	return &BakeProject{
		Config:   cfg,
		Timeline: tl,
	}
}

// Run bakes every frame that owns tweens. Frames are sampled concurrently,
// at most Config.Workers at a time; tracks come back in timeline order.
func (p *BakeProject) Run(ctx context.Context) ([]Track, error) {
	startTime := time.Now()

	var frames []*timeline.Frame
	for _, f := range p.Timeline.Frames() {
		if len(f.Tweens()) > 0 {
			frames = append(frames, f)
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("timeline has no tweens to bake")
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	fmt.Println("--- [PROJECT: BAKE ENGINE] ---")
	fmt.Printf("[*] Кадров с твинами: %d | Длина таймлайна: %d | Потоки: %d\n", len(frames), p.Timeline.Length(), workers)
	fmt.Println("-----------------------------")

	tracks := make([]Track, len(frames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range frames {
		g.Go(func() error {
			track, err := bakeFrame(gctx, f)
			if err != nil {
				return fmt.Errorf("frame %s: %w", f.ID, err)
			}
			tracks[i] = track
			fmt.Printf("[>] Ready: %d/%d\n", i+1, len(frames))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.report = Report{
		BuildVersion: p.Config.BuildVersion,
		Frames:       len(tracks),
		Total:        time.Since(startTime),
	}
	for _, t := range tracks {
		p.report.Samples += len(t.Samples)
	}

	if p.Config.ShowStats {
		host, err := system.Snapshot()
		if err != nil {
			log.Printf("[!] %v", err)
		}
		p.report.Host = host
		fmt.Print(p.report.String())
	}

	return tracks, nil
}

// Report returns the statistics of the last Run.
func (p *BakeProject) Report() Report {
	return p.report
}

func bakeFrame(ctx context.Context, f *timeline.Frame) (Track, error) {
	track := Track{
		FrameID:    f.ID,
		LayerIndex: f.LayerIndex(),
		Start:      f.Start,
		Samples:    make([]Sample, 0, f.Length()),
	}

	for pos := 1; pos <= f.Length(); pos++ {
		if err := ctx.Err(); err != nil {
			return Track{}, err
		}

		active := f.ActiveTween(pos)
		if active == nil {
			continue
		}
		track.Samples = append(track.Samples, Sample{
			Position:         pos,
			TimelinePosition: f.Start + pos - 1,
			Transformation:   active.Transformation(),
		})
	}

	return track, nil
}

// SampleAt resolves every frame under a timeline position without baking
// the whole timeline.
func SampleAt(tl *timeline.Timeline, position int) PositionSamples {
	ps := PositionSamples{Position: position}
	for _, l := range tl.Layers() {
		f := l.FrameAt(position)
		if f == nil {
			continue
		}
		active := f.ActiveTween(position - f.Start + 1)
		if active == nil {
			continue
		}
		ps.Frames = append(ps.Frames, FrameSample{
			FrameID:        f.ID,
			LayerIndex:     f.LayerIndex(),
			Transformation: active.Transformation(),
		})
	}
	return ps
}

// Report summarizes a bake.
type Report struct {
	BuildVersion string
	Frames       int
	Samples      int
	Total        time.Duration
	Host         system.HostStats
}

func (r Report) String() string {
	perSecond := 0.0
	if r.Total > 0 {
		perSecond = float64(r.Samples) / r.Total.Seconds()
	}

	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.3fs\n"+
			"Frames: %d\n"+
			"Samples: %d (%.0f/s)\n"+
			"CPUs: %d | Memory used: %.1f%% of %s\n"+
			"Process RSS: %s | CPU time: %.2fs | Goroutines: %d\n"+
			"----------------------------\n",
		r.BuildVersion, r.Total.Seconds(), r.Frames, r.Samples, perSecond,
		r.Host.LogicalCPUs, r.Host.UsedMemoryPct, system.FormatBytes(r.Host.TotalMemory),
		system.FormatBytes(r.Host.ProcessRSS), r.Host.ProcessCPUTime, r.Host.Goroutines,
	)
}

// AppendLog appends a one-line summary of the report to path.
func (r Report) AppendLog(path, input string) error {
	entry := fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Samples: %d | Total: %.3fs\n",
		time.Now().Format("2006-01-02 15:04:05"),
		r.BuildVersion,
		filepath.Base(input),
		r.Frames,
		r.Samples,
		r.Total.Seconds(),
	)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(entry)
	return err
}
