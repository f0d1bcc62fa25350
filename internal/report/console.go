package report

import (
	"fmt"
	"io"
)

// Console prints scan results as plain lines for a human reader.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Payload(text string) {
	fmt.Fprintf(c.w, "QR Code Data: %s\n", text)
}

func (c *Console) Failure(err error) {
	fmt.Fprintf(c.w, "Error: %v\n", err)
}

func (c *Console) Done() {
	fmt.Fprintln(c.w, "Done.")
}
