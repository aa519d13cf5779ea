package copytable

import (
	"io"

	"github.com/cheggaaa/pb"
	"github.com/tablecopy/dynamodbcopy"
)

// Progress reports the items handled by a copy
type Progress interface {
	Start(total int64)
	Observe(outcome dynamodbcopy.ItemOutcome)
	Finish()
}

// NewProgress returns a progress bar writing to out when enabled
func NewProgress(enabled bool, out io.Writer) Progress {
	if !enabled {
		return noProgress{}
	}

	return &barProgress{out: out}
}

type noProgress struct{}

func (noProgress) Start(int64)                      {}
func (noProgress) Observe(dynamodbcopy.ItemOutcome) {}
func (noProgress) Finish()                          {}

type barProgress struct {
	out io.Writer
	bar *pb.ProgressBar
}

// Start sizes the bar with the table item count, which the service refreshes only every few hours
func (p *barProgress) Start(total int64) {
	p.bar = pb.New64(total)
	p.bar.Output = p.out
	p.bar.ShowSpeed = true
	p.bar.SetMaxWidth(78)
	p.bar.Start()
}

func (p *barProgress) Observe(dynamodbcopy.ItemOutcome) {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
