package formaters

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
)

// Targets prints validated targets, passwords shown only as set or unset.
func Targets(w io.Writer, targets []settings.MirrorTarget) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Index", "Mirror url", "Username", "Password")
	tbl.WithWriter(w).WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, target := range targets {
		password := "unset"
		if target.Password != "" {
			password = "set"
		}

		tbl.AddRow(target.Index, target.Url, target.Username, password)
	}

	tbl.Print()
}

func FieldErrors(w io.Writer, fieldErrors []validation.FieldError) {
	headerFmt := color.New(color.FgRed, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Field", "Error")
	tbl.WithWriter(w).WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, fieldError := range fieldErrors {
		tbl.AddRow(fieldError.Field, fieldError.Message)
	}

	tbl.Print()
}
