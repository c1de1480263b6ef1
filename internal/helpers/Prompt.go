package helpers

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question on the terminal. A failed prompt, e.g. no tty, counts as no.
func Confirm(message string) bool {
	ask := promptui.Select{
		Label: fmt.Sprintf("%s [y/n]", message),
		Items: []string{"y", "n"},
	}

	_, result, err := ask.Run()
	if err != nil {
		return false
	}

	return result == "y"
}
