package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate RESULT_FILE",
	Short: "Check a saved match result against the result schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ok, _ := cmd.Flags().GetBool("print-schema"); ok {
			cmd.Print(schemas.ResultSchema())
			return nil
		}
		if len(args) == 0 {
			return errors.New("a result file is required")
		}

		schema, _ := cmd.Flags().GetString("schema")
		return validateResult(cmd, args[0], schema)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("schema", "", "a JSON schema file to use instead of the built-in result schema")
	validateCmd.Flags().Bool("print-schema", false, "print the built-in result schema and exit")
}

func validateResult(cmd *cobra.Command, path, schema string) error {
	var err error
	if schema != "" {
		err = schemas.ValidateJSON(schema, path)
	} else {
		err = schemas.ValidateResultFile(path)
	}
	if err != nil {
		return err
	}

	cmd.Printf("%s is valid\n", path)
	return nil
}
