// Package office holds small, separate device interfaces. A client that
// only prints depends on Printer and never sees Scan.
package office

import (
	"fmt"

	"github.com/roach88/solid/internal/logging"
)

type Printer interface {
	Print(document string)
}

type Scanner interface {
	Scan(document string)
}

// PrintScanner is a device that does both.
type PrintScanner interface {
	Printer
	Scanner
}

// BasicPrinter only prints.
type BasicPrinter struct {
	sink logging.Sink
}

func NewBasicPrinter(sink logging.Sink) *BasicPrinter {
	return &BasicPrinter{sink: sink}
}

func (p *BasicPrinter) Print(document string) {
	p.sink.Line(fmt.Sprintf("Printing: %s", document))
}

// MultiFunctionPrinter prints and scans.
type MultiFunctionPrinter struct {
	sink logging.Sink
}

func NewMultiFunctionPrinter(sink logging.Sink) *MultiFunctionPrinter {
	return &MultiFunctionPrinter{sink: sink}
}

func (p *MultiFunctionPrinter) Print(document string) {
	p.sink.Line(fmt.Sprintf("Printing: %s", document))
}

func (p *MultiFunctionPrinter) Scan(document string) {
	p.sink.Line(fmt.Sprintf("Scanning: %s", document))
}

// PrintAll sends every document to p in order.
func PrintAll(p Printer, documents ...string) {
	for _, d := range documents {
		p.Print(d)
	}
}

// Copy scans document and prints it back out.
func Copy(d PrintScanner, document string) {
	d.Scan(document)
	d.Print(document)
}
