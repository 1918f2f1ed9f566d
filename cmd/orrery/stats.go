package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/orrery"
)

var printer = message.NewPrinter(language.English)

// printStats renders frames off-screen and prints a table of per-frame
// rasterizer counters and timings.
func printStats(ctx *cli.Context) error {
	setupLogging(ctx)

	p, err := presetFromFlags(ctx)
	if err != nil {
		return err
	}
	if p.Frames = ctx.Int("frames"); p.Frames <= 0 {
		return fmt.Errorf("%w: %d frames", errInvalidPreset, p.Frames)
	}
	sc, err := newScene(p)
	if err != nil {
		return err
	}
	defer sc.Close()

	frames := make([]orrery.FrameStats, 0, p.Frames)
	for i := range p.Frames {
		if _, err := sc.frame(context.Background(), p.FrameTime(i, 0)); err != nil {
			return err
		}
		frames = append(frames, sc.r.Stats())
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"Frame", "Time", "Triangles", "Drawn", "Culled", "Clipped", "Fragments", "Coverage", "Geometry", "Sky", "Post", "Total"})
	var total time.Duration
	for _, st := range frames {
		table.Append(statsRow(st))
		total += st.Total
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "", "", "", "TOTAL", total.Round(time.Microsecond).String()})
	table.Render()

	fmt.Printf("%dx%d, %s frames, %.1f fps average\n", p.Width, p.Height,
		printer.Sprint(len(frames)), float64(len(frames))/total.Seconds())
	return nil
}

func statsRow(st orrery.FrameStats) []string {
	ms := func(d time.Duration) string {
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	}
	return []string{
		printer.Sprint(st.Frame),
		fmt.Sprintf("%.2fs", st.Time),
		printer.Sprint(st.Raster.Triangles),
		printer.Sprint(st.Raster.Drawn()),
		printer.Sprint(st.Raster.Culled),
		printer.Sprint(st.Raster.Clipped),
		printer.Sprint(st.Raster.Written),
		fmt.Sprintf("%.1f %%", st.Coverage()*100),
		ms(st.Geometry),
		ms(st.Sky),
		ms(st.Post),
		ms(st.Total),
	}
}
