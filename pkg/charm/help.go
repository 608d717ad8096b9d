package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/text"
	"golang.org/x/term"
)

// Help is a sub-command that displays help for its siblings.  Add it to
// the root Spec.
var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a sub-command, type "help command" where command is the
name of the command.`,
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		return &helpCommand{}, nil
	},
}

type helpCommand struct{}

func (*helpCommand) Run(args []string) error {
	spec := Help.Root()
	specs := []*Spec{spec}
	for _, arg := range args {
		spec = spec.lookupSub(arg)
		if spec == nil {
			return fmt.Errorf("no such command: %s", strings.Join(args, " "))
		}
		specs = append(specs, spec)
	}
	displayHelp(specs)
	return nil
}

const tab = "    "

func displayHelp(specs []*Spec) {
	writeHelp(os.Stderr, specs, width())
}

func width() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func writeHelp(w io.Writer, specs []*Spec, width int) {
	target := specs[len(specs)-1]
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	section(w, "NAME", strings.Join(names, " ")+" - "+target.Short)
	section(w, "USAGE", target.Usage)
	if options := flagLines(specs); len(options) > 0 {
		section(w, "OPTIONS", strings.Join(options, "\n"+tab))
	}
	var commands []string
	for _, child := range target.children {
		if !child.Hidden {
			commands = append(commands, child.Name+" - "+child.Short)
		}
	}
	if len(commands) > 0 {
		section(w, "COMMANDS", strings.Join(commands, "\n"+tab))
	}
	if long := strings.TrimSpace(target.Long); long != "" {
		section(w, "DESCRIPTION", wrap(long, width-len(tab)-5))
	}
}

// flagLines re-creates the command chain to enumerate every flag in effect
// for the last spec, including those registered by its ancestors.
func flagLines(specs []*Spec) []string {
	var lines []string
	var parent Command
	for _, spec := range specs {
		inst, err := newInstance(parent, spec)
		if err != nil {
			return lines
		}
		inst.flags.VisitAll(func(f *flag.Flag) {
			line := "-" + f.Name + " " + f.Usage
			if f.DefValue != "" {
				line = fmt.Sprintf("%s (default %q)", line, f.DefValue)
			}
			lines = append(lines, line)
		})
		parent = inst.command
	}
	return lines
}

func wrap(body string, lineWidth int) string {
	paragraphs := strings.Split(body, "\n\n")
	for k, paragraph := range paragraphs {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		paragraphs[k] = strings.ReplaceAll(text.Wrap(paragraph, lineWidth), "\n", "\n"+tab)
	}
	return strings.Join(paragraphs, "\n\n"+tab)
}

func section(w io.Writer, heading, body string) {
	fmt.Fprintf(w, "\033[1m%s\033[0m\n%s%s\n\n", heading, tab, body)
}
