package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Phase is one stage of a load-and-report run
type Phase string

const (
	PhaseLoading   Phase = "Loading"
	PhaseIndexing  Phase = "Indexing"
	PhaseAuditing  Phase = "Auditing"
	PhaseExporting Phase = "Exporting"
)

// ProgressBar is a styled bar for a single phase
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase Phase
}

func newBar(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	return &ProgressBar{bar: bar, phase: phase}
}

// Increment advances the bar by one step
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// Set moves the bar to n
func (pb *ProgressBar) Set(n int) error {
	return pb.bar.Set(n)
}

// SetTotal changes the number of steps once it is known
func (pb *ProgressBar) SetTotal(total int) {
	pb.bar.ChangeMax(total)
}

// Describe shows what the phase is currently working on
func (pb *ProgressBar) Describe(description string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, description))
}

// Finish completes the bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Pipeline hands out one bar per phase, in order
type Pipeline struct {
	phases  []Phase
	current int
	bar     *ProgressBar
	output  io.Writer
}

// NewPipeline writes to stdout; pass quiet to discard all bar output
func NewPipeline(phases []Phase, quiet bool) *Pipeline {
	var output io.Writer = os.Stdout
	if quiet {
		output = io.Discard
	}
	return NewPipelineWithOutput(phases, output)
}

// NewPipelineWithOutput writes bars to output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		output:  output,
	}
}

// NextPhase finishes the current bar and starts the next phase.
// It returns nil once every phase has been used.
func (p *Pipeline) NextPhase(total int) *ProgressBar {
	p.Finish()

	p.current++
	if p.current >= len(p.phases) {
		p.bar = nil
		return nil
	}

	p.bar = newBar(p.phases[p.current], total, p.output)
	return p.bar
}

// Current returns the phase in progress, or "" before the first and after the last
func (p *Pipeline) Current() Phase {
	if p.current < 0 || p.current >= len(p.phases) {
		return ""
	}
	return p.phases[p.current]
}

// Finish completes the bar in progress, if any
func (p *Pipeline) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
