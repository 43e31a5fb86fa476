package terminal

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// expandLongFlags rewrites unambiguous long option prefixes to the full
// option name, so --file reads as --files and --rep=x as --report=x.
// Everything after a bare "--" is left alone.
func expandLongFlags(args []string, flags *pflag.FlagSet) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if flags.Lookup(name) != nil {
			out = append(out, arg)
			continue
		}

		var matches []string
		flags.VisitAll(func(f *pflag.Flag) {
			if strings.HasPrefix(f.Name, name) {
				matches = append(matches, "--"+f.Name)
			}
		})

		switch len(matches) {
		case 0:
			// left for pflag to reject
			out = append(out, arg)
		case 1:
			if hasValue {
				out = append(out, matches[0]+"="+value)
			} else {
				out = append(out, matches[0])
			}
		default:
			return nil, &ArgumentError{
				Msg: fmt.Sprintf("ambiguous option: --%s could match %s", name, strings.Join(matches, ", ")),
			}
		}
	}
	return out, nil
}

// splitFileValues rewrites "--files a b" as "--files a --files b". Only values
// directly following --files are files; the next option or "--" ends the list,
// so later stray values reach the command as positional arguments.
func splitFileValues(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		out = append(out, arg)
		if arg != "--files" {
			continue
		}

		if i+1 >= len(args) || isOption(args[i+1]) {
			return nil, &ArgumentError{Msg: "argument --files: expected at least one argument"}
		}
		out = append(out, args[i+1])
		i++
		for i+1 < len(args) && !isOption(args[i+1]) {
			out = append(out, "--files", args[i+1])
			i++
		}
	}
	return out, nil
}

func isOption(arg string) bool {
	return strings.HasPrefix(arg, "-") && arg != "-"
}
