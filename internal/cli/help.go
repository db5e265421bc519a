package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize returns colored string if in terminal, otherwise plain
func colorize(s, color string) string {
	if !isTerminal() {
		return s
	}
	return color + s + colorReset
}

func bold(s string) string   { return colorize(s, colorBold) }
func dim(s string) string    { return colorize(s, colorDim) }
func cyan(s string) string   { return colorize(s, colorCyan) }
func green(s string) string  { return colorize(s, colorGreen) }
func yellow(s string) string { return colorize(s, colorYellow) }

// ShowColoredHelp shows the colorized help message
func (c *CLI) ShowColoredHelp() {
	ShowHelp()
}

// ShowHelp prints the general usage.
func ShowHelp() {
	fmt.Println()
	fmt.Println(bold(green("prefsheet")) + " - Preference sheets in the terminal")
	fmt.Println()

	fmt.Println(bold("USAGE"))
	fmt.Println("  " + cyan("prefsheet") + "                        " + dim("Open the interactive sheet"))
	fmt.Println("  " + cyan("prefsheet") + " " + yellow("<command>") + " " + dim("[options]") + "    " + dim("Run a command"))
	fmt.Println()

	fmt.Println(bold("COMMANDS"))
	printCommand("list", "[-plain]", "List preferences and values")
	printCommand("get", "<name>", "Print one value")
	printCommand("set", "<name> <value>", "Save a value")
	printCommand("reset", "<name>", "Go back to the default")
	printCommand("schema", "[-dump]", "Show the schema in use")
	printCommand("help", "<command>", "Show help for a command")
	fmt.Println()

	fmt.Println(bold("FLAGS"))
	fmt.Println("  " + yellow("-config <path>") + "   " + dim("Configuration file"))
	fmt.Println("  " + yellow("-debug") + "           " + dim("Mirror debug logs to stderr"))
	fmt.Println("  " + yellow("-help") + "            " + dim("Show this help"))
	fmt.Println("  " + yellow("-version") + "         " + dim("Show version information"))
	fmt.Println()

	fmt.Println(bold("EXAMPLES"))
	fmt.Println("  $ " + cyan("prefsheet set notifications on"))
	fmt.Println("  $ " + cyan("prefsheet set theme Dark") + "     " + dim("# labels are accepted for pickers"))
	fmt.Println("  $ " + cyan("prefsheet list -plain"))
	fmt.Println()

	fmt.Println(bold("CONFIGURATION"))
	fmt.Println("  Config file: " + cyan("~/.config/prefsheet/config.toml"))
	fmt.Println("  Override:    " + cyan("PREFSHEET_CONFIG") + ", " + cyan("PREFSHEET_<KEY>"))
	fmt.Println()
}

// printCommand formats and prints a command with description
func printCommand(cmd, args, desc string) {
	cmdPart := cyan(cmd)
	if args != "" {
		cmdPart += " " + yellow(args)
	}
	padding := 26 - len(cmd) - len(args)
	if args != "" {
		padding--
	}
	if padding < 2 {
		padding = 2
	}
	fmt.Printf("  %s%s%s\n", cmdPart, strings.Repeat(" ", padding), dim(desc))
}

// ShowCommandHelp shows help for a specific command
func ShowCommandHelp(command string) {
	switch command {
	case "list", "ls":
		showCommand("list", "[-plain]", "List every preference grouped by section.", []string{
			yellow("-plain") + "    " + dim("Print name=value lines without styling"),
		}, "prefsheet list -plain | grep theme")
	case "get":
		showCommand("get", "[-label] <name>", "Print the current value. Checkboxes print true or false,\n  pickers print the identifier.", []string{
			yellow("-label") + "    " + dim("Print the picker label instead"),
		}, "prefsheet get theme")
	case "set":
		showCommand("set", "<name> <value>", "Save a value. Checkboxes accept true/false, yes/no, on/off\n  and numbers; pickers accept an identifier or a label.", nil,
			"prefsheet set notifications off")
	case "reset":
		showCommand("reset", "<name>", "Remove the saved value so the schema default applies.", nil,
			"prefsheet reset theme")
	case "schema":
		showCommand("schema", "[-dump]", "Show the schema path, the values file and item counts.", []string{
			yellow("-dump") + "     " + dim("Print the schema as YAML"),
		}, "prefsheet schema -dump > schema.yaml")
	default:
		fmt.Printf("No detailed help available for '%s'\n", command)
		fmt.Println("Use 'prefsheet -help' for general help")
	}
}

func showCommand(name, synopsis, desc string, options []string, example string) {
	fmt.Println()
	fmt.Println(bold("NAME"))
	fmt.Println("  " + cyan("prefsheet "+name))
	fmt.Println()
	fmt.Println(bold("SYNOPSIS"))
	fmt.Println("  prefsheet " + name + " " + yellow(synopsis))
	fmt.Println()
	fmt.Println(bold("DESCRIPTION"))
	fmt.Println("  " + desc)
	fmt.Println()
	if len(options) > 0 {
		fmt.Println(bold("OPTIONS"))
		for _, o := range options {
			fmt.Println("  " + o)
		}
		fmt.Println()
	}
	fmt.Println(bold("EXAMPLE"))
	fmt.Println("  $ " + example)
	fmt.Println()
}
