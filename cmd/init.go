package cmd

import (
	"fmt"
	"os"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a localai.yml config file interactively",
	Long: `Scan the environment (docker, git, GPU, existing checkouts) and generate
a config file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "localai.yml"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning environment..."))
	detection := wizard.Detect(nil)
	if !detection.DockerAvailable {
		ui.Warn("docker not found in PATH; the stack cannot start without it")
	}
	if !detection.GitAvailable {
		ui.Warn("git not found in PATH; the Supabase repo cannot be fetched without it")
	}

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("localai start"))
	fmt.Printf("           %s\n", ui.Hint("or edit localai.yml to fine-tune your config"))

	return nil
}
