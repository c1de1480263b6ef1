package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/encrypt"
	"github.com/simplecontainer/mirror/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Keygen() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("keygen").Short("Generate the key that encrypts stored mirror passwords").Function(cmdKeygen).Flags(cmdKeygenFlags).Build(),
	)
}

func cmdKeygen(args []string) {
	path := viper.GetString("key.file")

	if err := writeKey(path, viper.GetBool("force"), helpers.Confirm); err != nil {
		helpers.PrintAndExit(err, 1)
	}

	fmt.Printf("encryption key written to %s\n", path)
}

// writeKey refuses to replace an existing key unless forced or confirmed. Passwords stored with the
// old key can no longer be decrypted once it is replaced.
func writeKey(path string, force bool, confirm func(string) bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		if !confirm(fmt.Sprintf("Key %s exists, stored mirror passwords become unreadable. Overwrite?", path)) {
			return errors.New("action aborted by user")
		}
	}

	key, err := encrypt.GenerateKey()

	if err != nil {
		return err
	}

	return encrypt.WriteKey(path, key)
}

func cmdKeygenFlags(cmd *cobra.Command) {
	cmd.Flags().String("key.file", static.DEFAULT_KEY_FILE, "Path of the encryption key")
	cmd.Flags().Bool("force", false, "Overwrite an existing key without asking")
}
