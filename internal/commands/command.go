// Package commands parses and dispatches command-palette input. Commands
// mirror the app's actions: generate a plan from free text, add a subject,
// complete a task, and show one subject's metrics.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypePlan     Type = "plan"
	TypeAdd      Type = "add"
	TypeComplete Type = "complete"
	TypeShow     Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type PlanArgs struct {
	Text string
}

type AddArgs struct {
	Name       string
	Due        string
	Difficulty int
	Priority   int
}

type CompleteArgs struct {
	Target   string
	Minutes  int
	Accuracy int
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type     Type
	Raw      string
	Plan     *PlanArgs
	Add      *AddArgs
	Complete *CompleteArgs
	Show     *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypePlan:
		return parsePlan(input, args)
	case TypeAdd:
		return parseAdd(input, args)
	case TypeComplete:
		return parseComplete(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parsePlan(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a request, e.g. plan physics in 3 weeks"}
	}
	return Command{Type: TypePlan, Raw: raw, Plan: &PlanArgs{Text: text}}, nil
}

// parseAdd reads "add <name...> due:<YYYY-MM-DD> [difficulty:<1-10>] [priority:<1-10>]".
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a subject name"}
	}

	add := AddArgs{Difficulty: 5, Priority: 5}
	var nameParts []string
	for _, arg := range args {
		key, value, found := strings.Cut(arg, ":")
		if !found {
			nameParts = append(nameParts, arg)
			continue
		}
		switch strings.ToLower(key) {
		case "due":
			add.Due = value
		case "difficulty":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("difficulty is not a number: %s", value)}
			}
			add.Difficulty = n
		case "priority":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("priority is not a number: %s", value)}
			}
			add.Priority = n
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown option: %s", key)}
		}
	}

	add.Name = strings.TrimSpace(strings.Join(nameParts, " "))
	if add.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a subject name"}
	}
	if add.Due == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires due:<YYYY-MM-DD>"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

// parseComplete reads "complete <target> [time:<minutes>] [accuracy:<0-100>]".
// Target is a position in the today list or a task id prefix; missing time
// and accuracy fall back to the handler's defaults.
func parseComplete(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "complete requires a task"}
	}

	complete := CompleteArgs{Target: strings.ToLower(args[0]), Minutes: -1, Accuracy: -1}
	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, ":")
		if !found {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unexpected argument: %s", arg)}
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is not a number: %s", key, value)}
		}
		switch strings.ToLower(key) {
		case "time":
			complete.Minutes = n
		case "accuracy":
			complete.Accuracy = n
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown option: %s", key)}
		}
	}
	return Command{Type: TypeComplete, Raw: raw, Complete: &complete}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(strings.Join(args, " "))}}, nil
}
