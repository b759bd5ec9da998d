package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wacomsync/internal/codec"
	"wacomsync/internal/domain"
)

var (
	applyFlags   profileFlags
	applySaveAs  string
	saveFlags    profileFlags
	exportFormat string
	importFormat string
)

// profilesCmd lists saved profiles
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

// applyCmd applies a saved or ad-hoc profile
var applyCmd = &cobra.Command{
	Use:   "apply [profile]",
	Short: "Apply a saved profile, or an ad-hoc one built from flags",
	Long: `Applies a profile to every stylus and eraser.

With a profile name the saved profile is applied. Without one, the profile is
built from --target, --mode and --keep-ratio, and can be saved with --save.

Every device is reported on its own line. The command fails if any device
could not be configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

// saveCmd saves a profile without applying it
var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

// exportCmd writes the profiles document to stdout
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved profiles as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

// importCmd merges profiles from a file
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from a JSON or YAML file (- for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	addProfileFlags(applyCmd, &applyFlags)
	applyCmd.Flags().StringVar(&applySaveAs, "save", "", "Save the ad-hoc profile under this name")
	addProfileFlags(saveCmd, &saveFlags)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (json, yaml)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format (json, yaml; default: from file extension)")
}

func addProfileFlags(cmd *cobra.Command, f *profileFlags) {
	cmd.Flags().StringVarP(&f.target, "target", "t", domain.DesktopTarget, "Monitor name, or desktop for the whole desktop")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(domain.ModeAbsolute), "Pointer mode (absolute, relative)")
	cmd.Flags().BoolVarP(&f.keepRatio, "keep-ratio", "k", false, "Trim the tablet area to the monitor's aspect ratio")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	a := newApp(cmd.Context(), false)
	defer a.Close()

	profiles, err := a.profiles.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No saved profiles")
		return nil
	}
	for _, name := range profiles.Names() {
		fmt.Fprintf(out, "%-16s %s\n", name, profiles[name])
	}
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && applySaveAs != "" {
		return fmt.Errorf("--save only applies to ad-hoc profiles")
	}

	var adHoc domain.Profile
	if len(args) == 0 {
		p, err := applyFlags.profile()
		if err != nil {
			return err
		}
		adHoc = p
	}

	a := newApp(cmd.Context(), true)
	defer a.Close()

	var (
		report *domain.ApplyReport
		err    error
	)
	if len(args) == 1 {
		report, err = a.profiles.ApplyNamed(cmd.Context(), args[0])
	} else {
		report, err = a.session.Apply(cmd.Context(), adHoc)
	}
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	if applySaveAs != "" {
		if err := a.profiles.Save(applySaveAs, adHoc); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q\n", strings.TrimSpace(applySaveAs))
	}
	return failedError(report)
}

func runSave(cmd *cobra.Command, args []string) error {
	p, err := saveFlags.profile()
	if err != nil {
		return err
	}

	a := newApp(cmd.Context(), false)
	defer a.Close()

	if err := a.profiles.Save(args[0], p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q: %s\n", strings.TrimSpace(args[0]), p)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := codec.ForFormat(exportFormat)
	if err != nil {
		return err
	}

	a := newApp(cmd.Context(), false)
	defer a.Close()

	return a.profiles.Export(cmd.OutOrStdout(), c)
}

func runImport(cmd *cobra.Command, args []string) error {
	format := importFormat
	if format == "" {
		format = formatFromPath(args[0])
	}
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	a := newApp(cmd.Context(), false)
	defer a.Close()

	saved, err := a.profiles.Import(r, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d profiles: %s\n", len(saved), strings.Join(saved, ", "))
	return nil
}

// formatFromPath guesses the codec from a file extension, defaulting to json
func formatFromPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return "yaml"
	}
	return "json"
}

// printReport writes the profile header and one line per device
func printReport(w io.Writer, report *domain.ApplyReport) {
	if report.ProfileName != "" {
		fmt.Fprintf(w, "Applying %q: %s\n", report.ProfileName, report.Summary())
	} else {
		fmt.Fprintf(w, "Applying %s\n", report.Summary())
	}
	if report.Empty() {
		fmt.Fprintln(w, "No devices found")
		return
	}
	for _, line := range report.Lines() {
		fmt.Fprintln(w, line)
	}
}
