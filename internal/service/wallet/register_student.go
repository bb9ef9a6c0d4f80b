package wallet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// RegisterStudent stores a student profile and opens a zero balance.
func (s *Service) RegisterStudent(ctx context.Context, input RegisterStudentInput) (*domain.Student, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate.Require(ctx, input.Student); err != nil {
		return nil, err
	}

	now := s.now()
	var student *domain.Student
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.store.Has(txCtx, studentKey(input.Student))
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrStudentAlreadyRegistered
		}

		student = &domain.Student{
			Address:    input.Student,
			Name:       input.Name,
			StudentID:  input.StudentID,
			Department: input.Department,
			JoinedAt:   now,
		}
		if err := ledger.Save(txCtx, s.store, studentKey(input.Student), student); err != nil {
			return err
		}
		if err := s.setBalance(txCtx, input.Student, 0); err != nil {
			return err
		}

		return s.record(txCtx, domain.OperationRegisterStudent, input.Student, now, map[string]any{
			"student_id": input.StudentID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "student registered",
		slog.String("address", student.Address.String()),
		slog.String("department", student.Department),
	)

	return student, nil
}
