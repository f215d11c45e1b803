package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/platform"
	"github.com/weft-ui/weft/internal/scaffold"
)

var (
	createPlatform    string
	createScheme      string
	createTypeScript  bool
	createPkgManager  string
	createSkipInstall bool
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new app wired to the Weft platform",
		Long: `Create a new application project with the directory layout, sync
configuration, and dependencies for your target platform.

Missing choices are prompted for interactively.

Examples:
  weft create my-app
  weft create my-app --platform nextjs --scheme codegen
  weft create my-app --platform react --no-typescript --skip-install`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createPlatform, "platform", "p", "", "Target platform (nextjs, gatsby, react)")
	cmd.Flags().StringVarP(&createScheme, "scheme", "s", "", "Integration scheme (codegen, loader)")
	cmd.Flags().BoolVar(&createTypeScript, "typescript", true, "Generate TypeScript code")
	cmd.Flags().StringVar(&createPkgManager, "package-manager", "", "Package manager to use (npm, yarn); default: detect")
	cmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Skip the dependency install")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		prompt := &survey.Input{Message: "Project name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(func(ans interface{}) error {
			return scaffold.ValidateProjectName(ans.(string))
		})); err != nil {
			return err
		}
	}

	target, err := askPlatform()
	if err != nil {
		return err
	}
	scheme, err := askScheme()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("typescript") && createPlatform == "" {
		// Fully interactive session: ask about TypeScript too.
		prompt := &survey.Confirm{Message: "Use TypeScript?", Default: true}
		if err := survey.AskOne(prompt, &createTypeScript); err != nil {
			return err
		}
	}

	opts := scaffold.Options{
		Name:           name,
		Platform:       target,
		Scheme:         scheme,
		TypeScript:     createTypeScript,
		PackageManager: createPkgManager,
		InstallDeps:    !createSkipInstall,
	}

	infoColor.Printf("Creating %s app %q...\n", target, name)

	if _, err := scaffold.New(nil, newLogger(false)).Create(cmd.Context(), ".", opts); err != nil {
		return err
	}

	successColor.Printf("\n✓ Created project: %s\n\n", name)
	fmt.Println("Get started:")
	fmt.Printf("  cd %s\n", name)
	if createSkipInstall {
		fmt.Printf("  %s install\n", pkgManagerOrDefault())
	}
	fmt.Println("  weft sync")
	fmt.Printf("  %s run dev\n", pkgManagerOrDefault())
	fmt.Println()

	return nil
}

func askPlatform() (platform.Platform, error) {
	if createPlatform != "" {
		return platform.ParsePlatform(createPlatform)
	}

	options := make([]string, 0, len(platform.Platforms()))
	for _, p := range platform.Platforms() {
		options = append(options, string(p))
	}
	var selected string
	prompt := &survey.Select{Message: "Target platform:", Options: options}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return platform.Platform(selected), nil
}

func askScheme() (platform.Scheme, error) {
	if createScheme != "" {
		return platform.ParseScheme(createScheme)
	}

	options := make([]string, 0, len(platform.Schemes()))
	for _, s := range platform.Schemes() {
		options = append(options, string(s))
	}
	var selected string
	prompt := &survey.Select{Message: "Integration scheme:", Options: options}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return platform.Scheme(selected), nil
}

func pkgManagerOrDefault() string {
	if createPkgManager != "" {
		return createPkgManager
	}
	return scaffold.DetectPackageManager()
}
