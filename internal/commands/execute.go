package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Plan     func(PlanArgs) (Result, error)
	Add      func(AddArgs) (Result, error)
	Complete func(CompleteArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "plan handler not configured"}
		}
		return handlers.Plan(*cmd.Plan)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeComplete:
		if handlers.Complete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "complete handler not configured"}
		}
		return handlers.Complete(*cmd.Complete)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
