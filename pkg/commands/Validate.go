package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/formaters"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func Validate() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("validate").Short("Validate a yaml file of flat mirror settings").Args(cobra.ExactArgs(1)).Function(cmdValidate).Build(),
	)
}

func cmdValidate(args []string) {
	ok, err := validateFile(os.Stdout, args[0])

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	if !ok {
		os.Exit(1)
	}
}

func validateFile(w io.Writer, path string) (bool, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return false, err
	}

	flat := settings.Flat{}

	if err = yaml.Unmarshal(data, &flat); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ok, fieldErrors, targets := validation.New().Validate(settings.Parse(flat))

	if !ok {
		formaters.FieldErrors(w, fieldErrors)
		return false, nil
	}

	formaters.Targets(w, targets)

	return true, nil
}
