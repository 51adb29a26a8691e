package rod

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"webui-e2e/internal/domain/entity"
)

// CDP messages that mean the node or its document is gone.
var staleMessages = []string{
	"Could not find object with given id",
	"Cannot find object with given id",
	"Cannot find context with specified id",
	"Execution context was destroyed",
	"Node with given id does not exist",
	"No node with given id found",
	"Node is detached from document",
	"Node is not an element",
}

func isStale(err error) bool {
	msg := err.Error()
	for _, m := range staleMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// classify maps rod errors onto the domain taxonomy. Context errors pass
// through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if isStale(err) {
		return fmt.Errorf("%w: %w", entity.ErrStale, err)
	}
	return err
}

// classifyAction additionally marks every other failure of a native action
// as a UI rejection.
func classifyAction(err error) error {
	err = classify(err)
	if err == nil || errors.Is(err, entity.ErrStale) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", entity.ErrNotInteractable, err)
}
