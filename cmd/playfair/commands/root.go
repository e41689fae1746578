package commands

import (
	"fmt"
	"io"
	"strings"

	"playfair-backend/crypto"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var key string

	root := &cobra.Command{
		Use:          "playfair",
		Short:        "Playfair digraph cipher",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return crypto.ValidateKey(key, crypto.MaxKeyLength)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&key, "key", "k", "", "passphrase used to build the key square")

	root.AddCommand(
		cipherCmd("encrypt", "Encrypt plaintext", &key, (*crypto.Playfair).Encrypt),
		cipherCmd("decrypt", "Decrypt ciphertext", &key, (*crypto.Playfair).Decrypt),
		squareCmd(&key),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func cipherCmd(use, short string, key *string, op func(*crypto.Playfair, string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("text is required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), op(crypto.NewPlayfair(*key), text))
			return nil
		},
	}
}

// square: print the key square.
func squareCmd(key *string) *cobra.Command {
	return &cobra.Command{
		Use:   "square",
		Short: "Print the key square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), crypto.NewKeySquare(*key).String())
			return nil
		},
	}
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
