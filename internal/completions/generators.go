package completions

import (
	"fmt"
	"strings"
)

// GenerateBash renders a bash script completing subcommands by position and
// the flags of the deepest matched command.
func GenerateBash(commands []CommandInfo) string {
	bin := binaryOf(commands)
	fn := "_" + identifier(bin) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur path i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    path=\"\"\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) path=\"${path:+$path }${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    local words=\"\"\n")
	b.WriteString("    case \"$path\" in\n")

	for _, cmd := range commands {
		key := strings.Join(cmd.Path[1:], " ")
		words := append([]string{}, cmd.Subcommands...)
		for _, f := range cmd.Flags {
			words = append(words, f.Names...)
		}
		if len(cmd.Path) > 1 {
			words = append(words, globalFlags(commands)...)
		}
		fmt.Fprintf(&b, "        %q) words=%q ;;\n", key, strings.Join(words, " "))
	}

	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$words\" -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

// GenerateZsh renders a zsh script with command descriptions.
func GenerateZsh(commands []CommandInfo) string {
	bin := binaryOf(commands)
	id := identifier(bin)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", id)
	b.WriteString("    local -a cmds\n")
	b.WriteString("    case \"$1\" in\n")
	for _, cmd := range commands {
		if len(cmd.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q)\n", strings.Join(cmd.Path[1:], " "))
		b.WriteString("            cmds=(\n")
		for _, name := range cmd.Subcommands {
			if sub := FindCommand(commands, append(append([]string{}, cmd.Path...), name)); sub != nil {
				fmt.Fprintf(&b, "                '%s:%s'\n", name, zshEscape(sub.Summary))
			}
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    (( ${#cmds} )) && _describe 'command' cmds\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", id)
	b.WriteString("    local path=\"\" w\n")
	b.WriteString("    for w in \"${words[@]:1:$((CURRENT - 2))}\"; do\n")
	b.WriteString("        [[ $w == -* ]] || path=\"${path:+$path }$w\"\n")
	b.WriteString("    done\n")
	b.WriteString("    if [[ ${words[CURRENT]} == -* ]]; then\n")
	b.WriteString("        local -a flags\n")
	b.WriteString("        case \"$path\" in\n")
	for _, cmd := range commands {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "            %q) flags=(", strings.Join(cmd.Path[1:], " "))
		for _, f := range cmd.Flags {
			for _, n := range f.Names {
				fmt.Fprintf(&b, " '%s:%s'", n, zshEscape(f.Description))
			}
		}
		b.WriteString(" ) ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("        (( ${#flags} )) && _describe 'flag' flags\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    _%s_commands \"$path\"\n", id)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", id, bin)
	return b.String()
}

// GenerateFish renders a fish script. Nested subcommands are offered once
// their parent has been typed.
func GenerateFish(commands []CommandInfo) string {
	bin := binaryOf(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, cmd := range commands {
		for _, name := range cmd.Subcommands {
			sub := FindCommand(commands, append(append([]string{}, cmd.Path...), name))
			if sub == nil {
				continue
			}
			cond := "__fish_use_subcommand"
			if len(cmd.Path) > 1 {
				cond = "__fish_seen_subcommand_from " + cmd.Name
			}
			fmt.Fprintf(&b, "complete -c %s -n '%s' -a %s -d '%s'\n", bin, cond, name, fishEscape(sub.Summary))
		}
	}

	b.WriteString("\n")
	for _, cmd := range commands {
		cond := ""
		if len(cmd.Path) > 1 {
			cond = fmt.Sprintf(" -n '__fish_seen_subcommand_from %s'", cmd.Name)
		}
		for _, f := range cmd.Flags {
			var opts []string
			for _, n := range f.Names {
				switch {
				case strings.HasPrefix(n, "--"):
					opts = append(opts, "-l "+n[2:])
				case strings.HasPrefix(n, "-"):
					opts = append(opts, "-s "+n[1:])
				}
			}
			req := ""
			if f.HasValue {
				req = " -r"
			}
			fmt.Fprintf(&b, "complete -c %s%s %s%s -d '%s'\n", bin, cond, strings.Join(opts, " "), req, fishEscape(f.Description))
		}
	}
	return b.String()
}

func globalFlags(commands []CommandInfo) []string {
	if len(commands) == 0 {
		return nil
	}
	var names []string
	for _, f := range commands[0].Flags {
		names = append(names, f.Names...)
	}
	return names
}

func identifier(bin string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return r
	}, bin)
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	return strings.ReplaceAll(s, ":", "\\:")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
