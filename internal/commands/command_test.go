package commands

import (
	"errors"
	"testing"
)

func parseErrCode(t *testing.T, input string) ErrorCode {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("Parse(%q): expected error", input)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Parse(%q): expected *CommandError, got %T", input, err)
	}
	return cmdErr.Code
}

func TestParsePlan(t *testing.T) {
	cmd, err := Parse("/plan math and physics exam in 30 days")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Type != TypePlan {
		t.Fatalf("expected plan command, got %s", cmd.Type)
	}
	if cmd.Plan.Text != "math and physics exam in 30 days" {
		t.Fatalf("unexpected plan text: %q", cmd.Plan.Text)
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("add Computer Science due:2026-10-01 difficulty:7 priority:9")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Type != TypeAdd {
		t.Fatalf("expected add command, got %s", cmd.Type)
	}
	add := *cmd.Add
	if add.Name != "Computer Science" || add.Due != "2026-10-01" || add.Difficulty != 7 || add.Priority != 9 {
		t.Fatalf("unexpected add args: %+v", add)
	}
}

func TestParseAddDefaults(t *testing.T) {
	cmd, err := Parse("add History due:2026-11-12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Difficulty != 5 || cmd.Add.Priority != 5 {
		t.Fatalf("expected default difficulty and priority 5, got %+v", *cmd.Add)
	}
}

func TestParseComplete(t *testing.T) {
	cmd, err := Parse("complete 2 time:45 accuracy:80")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	complete := *cmd.Complete
	if complete.Target != "2" || complete.Minutes != 45 || complete.Accuracy != 80 {
		t.Fatalf("unexpected complete args: %+v", complete)
	}

	cmd, err = Parse("complete ab12f")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Complete.Minutes != -1 || cmd.Complete.Accuracy != -1 {
		t.Fatalf("expected unset minutes and accuracy, got %+v", *cmd.Complete)
	}
}

func TestParseShow(t *testing.T) {
	cmd, err := Parse("show Computer Science")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Show.Subject != "computer science" {
		t.Fatalf("expected lowercased subject, got %q", cmd.Show.Subject)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		want  ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"   / ", ErrCodeEmptyInput},
		{"delete everything", ErrCodeUnknownCommand},
		{"plan", ErrCodeInvalidArgument},
		{"add due:2026-10-01", ErrCodeInvalidArgument},
		{"add History", ErrCodeInvalidArgument},
		{"add History due:2026-10-01 difficulty:hard", ErrCodeInvalidArgument},
		{"add History due:2026-10-01 color:red", ErrCodeInvalidArgument},
		{"complete", ErrCodeInvalidArgument},
		{"complete 1 extra", ErrCodeInvalidArgument},
		{"complete 1 time:lots", ErrCodeInvalidArgument},
		{"show", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		if got := parseErrCode(t, tc.input); got != tc.want {
			t.Fatalf("Parse(%q) code = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	var gotText string
	handlers := Handlers{
		Plan: func(args PlanArgs) (Result, error) {
			gotText = args.Text
			return Result{Message: "planned"}, nil
		},
	}

	cmd, err := Parse("plan physics in 2 weeks")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	result, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if result.Message != "planned" || gotText != "physics in 2 weeks" {
		t.Fatalf("unexpected dispatch: message=%q text=%q", result.Message, gotText)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show math")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing error, got %v", err)
	}
}
