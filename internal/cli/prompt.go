package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine reads one line with the ending trimmed, reporting end of
// input separately from read errors.
func readLine(reader *bufio.Reader) (line string, atEOF bool, err error) {
	raw, err := reader.ReadString('\n')
	if err == io.EOF {
		return strings.TrimRight(raw, "\r\n"), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(raw, "\r\n"), false, nil
}

// promptString asks for a string value with an optional default.
func promptString(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		line, atEOF, err := readLine(reader)
		if err != nil {
			return "", err
		}
		switch line = strings.TrimSpace(line); {
		case line != "":
			return line, nil
		case defaultValue != "":
			return defaultValue, nil
		case atEOF:
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptYesNo prompts for a yes/no response with a default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, atEOF, err := readLine(reader)
		if err != nil {
			return false, err
		}
		switch line = strings.TrimSpace(strings.ToLower(line)); line {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if atEOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// answer is one parsed response to a quiz prompt.
type answer struct {
	quit   bool
	choice int
}

// promptChoice asks for a numbered answer between 1 and count, or q to
// quit. End of input quits like q.
func promptChoice(reader *bufio.Reader, out io.Writer, count int) (answer, error) {
	for {
		fmt.Fprintf(out, "Answer [1-%d, q quits]: ", count)
		line, atEOF, err := readLine(reader)
		if err != nil {
			return answer{}, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		switch {
		case line == "q" || line == "quit":
			return answer{quit: true}, nil
		case line == "":
			if atEOF {
				return answer{quit: true}, nil
			}
		default:
			n, convErr := strconv.Atoi(line)
			if convErr == nil && n >= 1 && n <= count {
				return answer{choice: n}, nil
			}
			if atEOF {
				return answer{}, fmt.Errorf("invalid answer %q", line)
			}
			fmt.Fprintf(out, "Please answer a number between 1 and %d, or q.\n", count)
		}
	}
}
