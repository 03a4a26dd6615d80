package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/edfdur/internal/config"
	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// Help text alignment width for flags.
const helpFlagWidth = 22

func printUsage() {
	w := out

	w.HelpTitle("edfdur - report the recording duration of EDF files")

	w.HelpSection("Usage:")
	w.HelpUsage("edfdur [flags] <file.edf|file.list>...")
	w.HelpUsage("edfdur [flags] -- <paths>...")

	w.HelpSection("Arguments:")
	w.HelpFlag("<file.edf>", "EDF file; its duration is added to the totals", helpFlagWidth)
	w.HelpFlag("<file.list>", "Text file with one EDF path per line ('#' starts a comment)", helpFlagWidth)
	w.Println("  Paths may use $VAR, ${VAR} and ~. Lists are expanded one level deep.")

	w.HelpSection("Flags:")
	w.HelpFlag("-v, --verbose", "Same as --debug-level=brief", helpFlagWidth)
	w.HelpFlag("--debug-level=<level>", fmt.Sprintf("Diagnostic output (%s)", strings.Join(output.DebugLevelNames(), ", ")), helpFlagWidth)
	w.HelpFlag("--config=<path>", fmt.Sprintf("Config file (default: nearest %s)", config.FileName), helpFlagWidth)
	w.HelpFlag("--env-file=<path>", "Load variables from a dotenv file (repeatable)", helpFlagWidth)
	w.HelpFlag("--color=<mode>", fmt.Sprintf("Color output (%s)", strings.Join(config.ValidColors, ", ")), helpFlagWidth)
	w.HelpFlag("--no-color", "Same as --color=never", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Environment:")
	w.HelpEnvVar("NO_COLOR=1", "Disable colors when --color=auto", 12)

	w.HelpSection("Exit Codes:")
	w.HelpFlag("0", "Report printed", 4)
	w.HelpFlag("2", "Invalid flag, config file or env file", 4)
	w.HelpFlag("70", "An input file does not exist or a list could not be opened", 4)

	w.HelpSection("Examples:")
	w.HelpExample("edfdur session1.edf session2.edf", "Total two recordings")
	w.HelpExample("edfdur --env-file=site.env '$EEG_DATA/train.list'", "Total every file named in a list")
	w.Println("")
}
