package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/services/docscheck"
	"winetrade/internal/core/ports"
	"winetrade/internal/obs"
	"winetrade/internal/pkg/errs"
)

// SetImportCaseStatusCommandHandler handles lifecycle changes of import
// cases.
//
// The transition table is checked first; a chart-valid move is then gated on
// every document the target status requires being verified. The status
// write is guarded by the case's prior status and the audit event is
// best-effort.
type SetImportCaseStatusCommandHandler struct {
	uowFactory ImportCaseUoWFactory
	documents  ports.DocumentProvider
	checker    docscheck.Checker
	now        func() time.Time
}

// NewSetImportCaseStatusCommandHandler creates a handler for import case
// status changes.
func NewSetImportCaseStatusCommandHandler(
	uowFactory ImportCaseUoWFactory,
	documents ports.DocumentProvider,
	checker docscheck.Checker,
) SetImportCaseStatusCommandHandler {
	return SetImportCaseStatusCommandHandler{
		uowFactory: uowFactory,
		documents:  documents,
		checker:    checker,
		now:        time.Now,
	}
}

// Handle moves the case to the target status.
func (h *SetImportCaseStatusCommandHandler) Handle(ctx context.Context, cmd SetImportCaseStatusCommand) (SetImportCaseStatusResult, error) {
	var result SetImportCaseStatusResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.ImportCaseRepository().Get(ctx, cmd.TenantID(), cmd.CaseID())
	if err != nil {
		return result, err
	}

	from := aggregate.Status()
	if err = importcase.ValidateTransition(from, cmd.Target()); err != nil {
		return result, err
	}

	if err = h.validateDocuments(ctx, cmd); err != nil {
		return result, err
	}

	if err = aggregate.TransitionTo(cmd.Target(), h.now()); err != nil {
		return result, err
	}

	if err = uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportCaseRepository().UpdateStatus(ctx, aggregate, from); err != nil {
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	obs.RecordTransition(importcase.Kind, string(from), string(cmd.Target()))

	result.From = from
	result.To = cmd.Target()
	result.AllowedNext = cmd.Target().AllowedNext()

	event := importcase.NewStatusEvent(cmd.CaseID(), from, cmd.Target(), cmd.ChangedBy(), cmd.Note())
	if err = uow.ImportCaseRepository().AddStatusEvent(ctx, cmd.TenantID(), event); err != nil {
		result.Degraded = append(result.Degraded, "status_event")
		obs.RecordDegraded("set_import_case_status", "status_event", err)
	}

	return result, nil
}

func (h *SetImportCaseStatusCommandHandler) validateDocuments(ctx context.Context, cmd SetImportCaseStatusCommand) error {
	types, err := h.documents.Types(ctx, cmd.TenantID())
	if err != nil {
		return err
	}
	verifications, err := h.documents.Verifications(ctx, cmd.TenantID(), cmd.CaseID())
	if err != nil {
		return err
	}

	report := h.checker.Requirements(cmd.Target(), types, verifications)
	if !report.AllRequiredSatisfied() {
		blocking := append(append([]string{}, report.Missing...), report.Pending...)
		return errs.NewMissingDependencyError("verified documents",
			fmt.Sprintf("status %s requires: %s", cmd.Target(), strings.Join(blocking, ", ")))
	}
	return nil
}
