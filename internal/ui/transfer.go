package ui

import (
	"fmt"
	"io"
)

// TransferUI reports the outcome of export and import
type TransferUI struct {
	writer io.Writer
	quiet  bool
}

// NewTransferUI creates a new UI handler for export and import
func NewTransferUI(w io.Writer, quiet bool) *TransferUI {
	return &TransferUI{writer: w, quiet: quiet}
}

// PrintExported reports that count records were written to path.
func (u *TransferUI) PrintExported(path string, count int) {
	if u.quiet {
		fmt.Fprintf(u.writer, "exported=%d path=%s\n", count, path)
		return
	}
	body := Title.Render("Export complete") + "\n" +
		FormatKeyValue("File", path) + "\n" +
		FormatKeyValue("Taxonomies", fmt.Sprintf("%d", count))
	fmt.Fprintln(u.writer, SuccessBox.Render(body))
}

// PrintImported reports an import that left total records, added of them new.
func (u *TransferUI) PrintImported(path string, total, added int) {
	if u.quiet {
		fmt.Fprintf(u.writer, "imported path=%s total=%d new=%d\n", path, total, added)
		return
	}
	body := Title.Render("Import complete") + "\n" +
		FormatKeyValue("File", path) + "\n" +
		FormatKeyValue("Saved taxonomies", fmt.Sprintf("%d", total)) + "\n" +
		FormatKeyValue("New", fmt.Sprintf("%d", added))
	fmt.Fprintln(u.writer, SuccessBox.Render(body))
}
