package command

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	called := false

	built := NewBuilder().
		Parent("mirror").
		Name("trigger").
		Args(cobra.ExactArgs(1)).
		Flags(func(cmd *cobra.Command) { cmd.Flags().String("api", "", "") }).
		Function(func(args []string) { called = true }).
		Build()

	assert.Equal(t, "mirror", built.Parent)
	assert.Equal(t, "trigger", built.Name)

	cobraCmd := built.Cobra()
	assert.Equal(t, "trigger", cobraCmd.Use)
	assert.Equal(t, "mirror trigger", cobraCmd.Short)
	assert.NotNil(t, cobraCmd.Flags().Lookup("api"))
	assert.Error(t, cobraCmd.Args(cobraCmd, []string{}))

	built.Function(nil)
	assert.True(t, called)
}

func TestBuilderValidation(t *testing.T) {
	assert.Error(t, NewBuilder().Name("serve").Validate())
	assert.Error(t, NewBuilder().Parent("mirror").Validate())
	assert.Panics(t, func() { NewBuilder().BuildWithValidation() })
	assert.NotPanics(t, func() { NewBuilder().Parent("mirror").Name("serve").BuildWithValidation() })
}
