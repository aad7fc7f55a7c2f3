package usecases

import (
	"context"
	"fmt"

	"sanad/internal/application/supervisor/dto"
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/locale"
	"sanad/internal/shared/logger"
)

type UpsertSupervisorCommand struct {
	EmployeeID uint // zero means create
	Profile    supervisor.Profile
	StatusID   int
	Language   string
}

type UpsertSupervisorResult struct {
	Supervisor dto.SupervisorDTO
	Created    bool
	Message    string
}

type UpsertSupervisorExecutor interface {
	Execute(ctx context.Context, cmd UpsertSupervisorCommand) (*UpsertSupervisorResult, error)
}

type UpsertSupervisorUseCase struct {
	supervisorRepo supervisor.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewUpsertSupervisorUseCase(
	supervisorRepo supervisor.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpsertSupervisorUseCase {
	return &UpsertSupervisorUseCase{
		supervisorRepo: supervisorRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UpsertSupervisorUseCase) Execute(
	ctx context.Context,
	cmd UpsertSupervisorCommand,
) (*UpsertSupervisorResult, error) {
	uc.logger.Infow("upserting supervisor",
		"employee_id", cmd.EmployeeID,
		"email", cmd.Profile.OfficialEmail)

	lang := locale.Normalize(cmd.Language)

	var (
		result  *supervisor.Supervisor
		created bool
	)
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.EmployeeID == 0 {
			return uc.create(txCtx, cmd, &result, &created)
		}
		return uc.update(txCtx, cmd, &result)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to upsert supervisor",
			"employee_id", cmd.EmployeeID,
			"error", txErr)
		return nil, txErr
	}

	return &UpsertSupervisorResult{
		Supervisor: dto.ToSupervisorDTO(result),
		Created:    created,
		Message:    upsertMessage(lang, created),
	}, nil
}

func (uc *UpsertSupervisorUseCase) create(
	ctx context.Context,
	cmd UpsertSupervisorCommand,
	out **supervisor.Supervisor,
	created *bool,
) error {
	// Reject a duplicate email before hitting the unique index so the
	// caller gets a conflict error instead of a bare driver failure.
	if _, err := uc.supervisorRepo.FindByOfficialEmail(ctx, cmd.Profile.OfficialEmail); err == nil {
		return errors.NewConflictError("supervisor with this email already exists")
	} else if !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	s, err := supervisor.NewSupervisor(cmd.Profile)
	if err != nil {
		return err
	}

	if err := uc.supervisorRepo.Save(ctx, s); err != nil {
		return err
	}

	*out = s
	*created = true
	return nil
}

func (uc *UpsertSupervisorUseCase) update(
	ctx context.Context,
	cmd UpsertSupervisorCommand,
	out **supervisor.Supervisor,
) error {
	s, err := uc.supervisorRepo.FindByEmployeeID(ctx, cmd.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to load supervisor: %w", err)
	}

	if err := s.UpdateProfile(cmd.Profile); err != nil {
		return err
	}

	if cmd.StatusID != 0 {
		status, err := supervisor.NewStatus(cmd.StatusID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.ChangeStatus(status); err != nil {
			return err
		}
	}

	if err := uc.supervisorRepo.Update(ctx, s); err != nil {
		return err
	}

	*out = s
	return nil
}

func upsertMessage(lang string, created bool) string {
	if lang == constants.LanguageArabic {
		if created {
			return "تم إنشاء المشرف بنجاح"
		}
		return "تم تحديث المشرف بنجاح"
	}
	if created {
		return "Supervisor created successfully"
	}
	return "Supervisor updated successfully"
}
