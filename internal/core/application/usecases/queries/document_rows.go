package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// loadCaseStatus reads the current status of one import case. Returns nil
// when no case matches within the tenant.
func loadCaseStatus(ctx context.Context, db *gorm.DB, tenantID, caseID kernel.UUID) (*importcase.Status, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT status
		FROM import_cases
		WHERE id = ? AND tenant_id = ?
	`, caseID.Bytes(), tenantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var status string
	if err = rows.Scan(&status); err != nil {
		return nil, err
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	current := importcase.Status(status)
	return &current, nil
}

// loadDocumentTypes reads the tenant's document catalog. The required_for
// column holds a JSON array of case statuses.
func loadDocumentTypes(ctx context.Context, db *gorm.DB, tenantID kernel.UUID) ([]importcase.DocumentType, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT code, name, required_for
		FROM document_types
		WHERE tenant_id = ?
		ORDER BY code
	`, tenantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []importcase.DocumentType
	for rows.Next() {
		var (
			code, name  string
			requiredFor []byte
		)
		if err = rows.Scan(&code, &name, &requiredFor); err != nil {
			return nil, err
		}

		dt := importcase.DocumentType{Code: code, Name: name}
		if len(requiredFor) > 0 {
			if err = json.Unmarshal(requiredFor, &dt.RequiredForStatuses); err != nil {
				return nil, fmt.Errorf("document type %s holds malformed required_for: %w", code, err)
			}
		}
		types = append(types, dt)
	}

	return types, rows.Err()
}

// loadDocumentVerifications reads the verification records of one case.
func loadDocumentVerifications(
	ctx context.Context,
	db *gorm.DB,
	tenantID, caseID kernel.UUID,
) ([]importcase.DocumentVerification, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT document_code, state
		FROM document_verifications
		WHERE tenant_id = ? AND import_case_id = ?
		ORDER BY document_code
	`, tenantID.Bytes(), caseID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verifications []importcase.DocumentVerification
	for rows.Next() {
		var code, state string
		if err = rows.Scan(&code, &state); err != nil {
			return nil, err
		}
		verifications = append(verifications, importcase.DocumentVerification{
			DocumentCode: code,
			State:        importcase.VerificationState(state),
		})
	}

	return verifications, rows.Err()
}
