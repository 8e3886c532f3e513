package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	icnserrors "github.com/provide-io/createicns/pkg/icns/errors"
	"github.com/provide-io/createicns/pkg/icns/filetype"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	fixLabel   = color.New(color.FgGreen, color.Bold)
)

// configureColor turns colored output off when it would not reach a terminal.
func configureColor(terminal bool) {
	color.NoColor = color.NoColor || !terminal
}

// printError writes err as an "error:" line, followed by a "fix:" line when
// there is an obvious remedy.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("error:"), message(err))
	if hint := fix(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", fixLabel.Sprint("fix:"), hint)
	}
}

// message strips the log marker carried by sentinel texts.
func message(err error) string {
	return strings.ReplaceAll(err.Error(), "❌ ", "")
}

func fix(err error) string {
	var pathErr *icnserrors.PathError
	var pkgErr *icnserrors.PackagingError

	switch {
	case errors.As(err, &pathErr) && errors.Is(err, icnserrors.ErrWrongExtension) && pathErr.Expected != "":
		return fmt.Sprintf("Use path extension '%s'", pathErr.Expected)
	case errors.Is(err, icnserrors.ErrUnsupportedFormat):
		return "Run 'createicns --formats' to see the valid input formats"
	case errors.Is(err, icnserrors.ErrNonSquareDimensions):
		return "Crop or pad the image so that its width and height are equal"
	case errors.As(err, &pkgErr) && pkgErr.Tool != "native":
		return "Retry with '--packager native'"
	}
	return ""
}

// formatsTable renders the valid input formats, sorted by identifier. Output
// that is not going to a terminal gets an ASCII border.
func formatsTable(types []filetype.FileType, terminal bool) string {
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		ext := t.PreferredExtension()
		if ext == "" {
			ext = "--"
		}
		rows = append(rows, []string{t.Identifier(), ext})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	border := lipgloss.NormalBorder()
	if !terminal {
		border = lipgloss.ASCIIBorder()
	}
	t := table.New().
		Border(border).
		Headers("Identifier", "Extension").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return "Valid Input Formats:\n" + t.String()
}
