package wizard

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pretty"
)

const (
	newline         = '\n'
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"
)

var (
	namePattern = regexp.MustCompile(`^[\w-]+$`)
)

type Validator func(string) bool

func memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

func regexpValidation(validator *regexp.Regexp, erratic string) Validator {
	return func(input string) bool {
		if !validator.MatchString(input) {
			common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
			return false
		}
		return true
	}
}

func ask(question, defaults string, validator Validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		source := bufio.NewReader(os.Stdin)
		reply, err := source.ReadString(newline)
		common.Stdout("\n")
		if err != nil {
			return "", err
		}
		if reply == UNIX_NEWLINE || reply == WINDOWS_NEWLINE {
			reply = defaults
		}
		reply = strings.TrimSpace(reply)
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}

// ValidateUnitName accepts the names discovery can work with:
// alphanumerics, underscores and hyphens, nothing else.
func ValidateUnitName() Validator {
	return regexpValidation(
		namePattern,
		"Invalid application name. Only alphanumeric characters, underscores, and hyphens are allowed.",
	)
}
