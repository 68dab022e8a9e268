package user

import (
	"context"

	usererrors "go-hrm/internal/user/errors"

	"github.com/google/uuid"
)

// Candidate holds the uniqueness-relevant fields of a user about to be
// written.
type Candidate struct {
	Email      string
	EmployeeID *string
}

// Validator enforces email and employee ID uniqueness ahead of the write.
// The unique indexes remain the final arbiter under concurrency.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

// Validate checks c against every other user. selfID excludes the record
// being updated; pass nil on create.
func (v *Validator) Validate(ctx context.Context, c Candidate, selfID *uuid.UUID) error {
	taken, err := v.repo.ExistsByEmail(ctx, c.Email, selfID)
	if err != nil {
		return err
	}
	if taken {
		return usererrors.ErrDuplicateEmail
	}

	if c.EmployeeID == nil || *c.EmployeeID == "" {
		return nil
	}

	taken, err = v.repo.ExistsByEmployeeID(ctx, *c.EmployeeID, selfID)
	if err != nil {
		return err
	}
	if taken {
		return usererrors.ErrDuplicateEmployeeID
	}
	return nil
}
