// Package output renders scan reports.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/productdevbook/portprobe/internal/scanner"
)

const indent = "    "

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Format selects a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	}
	return FormatText
}

// Write renders r to w in the given format. styled only affects text.
func Write(w io.Writer, r *scanner.Report, f Format, styled bool) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	}
	return WriteText(w, r, styled)
}

// WriteText prints the header followed by one line per open port, or a
// single "None" line when nothing is open.
func WriteText(w io.Writer, r *scanner.Report, styled bool) error {
	header := fmt.Sprintf("Ports open on %s:", r.Host)
	if styled {
		header = headerStyle.Render(header)
	}

	var b bytes.Buffer
	fmt.Fprintln(&b, header)
	if len(r.Open) == 0 {
		fmt.Fprintln(&b, indent+"None")
	}
	for _, p := range r.Open {
		line := fmt.Sprintf("%s%-5d = %s", indent, p.Port, p.Service)
		if p.Process != "" {
			line += " (" + p.Process + ")"
		}
		fmt.Fprintln(&b, line)
	}

	_, err := w.Write(b.Bytes())
	return err
}

// WriteJSON encodes the report as indented JSON. Open is always an array.
func WriteJSON(w io.Writer, r *scanner.Report) error {
	out := *r
	if out.Open == nil {
		out.Open = []scanner.OpenPort{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteCSV writes one row per open port.
func WriteCSV(w io.Writer, r *scanner.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"host", "port", "service", "process"}); err != nil {
		return err
	}
	for _, p := range r.Open {
		row := []string{r.Host, strconv.Itoa(p.Port), p.Service, p.Process}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile renders r into path atomically, choosing the format from the
// extension.
func WriteFile(path string, r *scanner.Report) error {
	var buf bytes.Buffer
	if err := Write(&buf, r, FormatForPath(path), false); err != nil {
		return err
	}
	return WriteAtomic(path, buf.Bytes())
}
