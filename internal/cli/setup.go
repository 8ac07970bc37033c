package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/config"
	"github.com/UPB-SysSec/3MF-Analyzer/internal/description"
	"github.com/spf13/cobra"
)

var setupEnvFlag bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the data directory layout",
	Long: `Create the directories tmfgen reads and writes and the empty description
files. Existing files are left untouched.

  tmfgen setup          # create <data>/{xsd,description,testcases/generated,logs}
  tmfgen setup --env    # also write a .env template for the S3 mirror`,
	RunE: setupCommand,
}

func init() {
	setupCmd.Flags().BoolVar(&setupEnvFlag, "env", false, "Write a .env template into the working directory")
	rootCmd.AddCommand(setupCmd)
}

const envTemplate = `# S3 compatible mirror used by "tmfgen generate --publish".
TMF_S3_ENDPOINT=
TMF_S3_REGION=us-east-1
TMF_S3_BUCKET=tmf-corpus
TMF_S3_ACCESS_KEY=
TMF_S3_SECRET_KEY=
TMF_S3_USE_SSL=true
`

func setupCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setup(os.Stdout, cfg, setupEnvFlag); err != nil {
		return err
	}
	printSetupInstructions(os.Stdout, cfg)
	return nil
}

func setup(w io.Writer, cfg *config.Config, writeEnv bool) error {
	for _, dir := range []string{cfg.DataDir, cfg.XSDDir, cfg.GeneratedDir, filepath.Dir(cfg.LogPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		fmt.Fprintf(w, "  %s  %s\n", passIcon(true), dir)
	}

	if _, err := description.Open(cfg.DescriptionDir); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s  %s\n", passIcon(true), cfg.DescriptionDir)

	if !writeEnv {
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		fmt.Fprintln(w, "  ⬚  .env exists, not overwritten")
		return nil
	}
	if err := os.WriteFile(".env", []byte(envTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write .env: %w", err)
	}
	fmt.Fprintf(w, "  %s  .env\n", passIcon(true))
	return nil
}

func printSetupInstructions(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  1. Copy the 3MF schemas to %s as 3mf-<spec>.xsd\n", cfg.XSDDir)
	fmt.Fprintln(w, "     (core, materials, production, slice)")
	fmt.Fprintln(w, "  2. tmfgen selftest")
	fmt.Fprintln(w, "  3. tmfgen generate")
	fmt.Fprintln(w, "  4. tmfgen build")
}
