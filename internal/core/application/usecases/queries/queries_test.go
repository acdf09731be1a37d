package queries_test

import (
	"testing"

	"winetrade/internal/core/application/usecases/queries"
	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetImportCaseQuery_Valid(t *testing.T) {
	query, err := queries.NewGetImportCaseQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetImportCaseQuery_RejectsZeroIDs(t *testing.T) {
	_, err := queries.NewGetImportCaseQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetImportCaseQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetImportCaseQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetImportCaseQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetImportCaseQueryIsNotConstructed)
}

func TestNewGetDocumentRequirementsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDocumentRequirementsQuery(
		kernel.NewUUID(), kernel.NewUUID(), importcase.StatusApproved,
	)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, importcase.StatusApproved, query.Target())
}

func TestNewGetDocumentRequirementsQuery_EmptyTargetMeansCurrentStatus(t *testing.T) {
	query, err := queries.NewGetDocumentRequirementsQuery(
		kernel.NewUUID(), kernel.NewUUID(), "",
	)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, importcase.Status(""), query.Target())
}

func TestNewGetDocumentRequirementsQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewGetDocumentRequirementsQuery(
		kernel.NewUUID(), kernel.NewUUID(), importcase.Status("SOMEWHERE"),
	)
	require.Error(t, err)
}

func TestGetDocumentRequirementsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDocumentRequirementsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDocumentRequirementsQueryIsNotConstructed)
}

func TestNewCanTransitionQuery_Valid(t *testing.T) {
	query, err := queries.NewCanTransitionQuery(
		kernel.NewUUID(), kernel.NewUUID(), importcase.StatusSubmitted,
	)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestCanTransitionQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.CanTransitionQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCanTransitionQueryIsNotConstructed)
}

func TestNewGetLinkedSupplierImportsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLinkedSupplierImportsQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetLinkedSupplierImportsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLinkedSupplierImportsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLinkedSupplierImportsQueryIsNotConstructed)
}

func TestNewGetOrderEventsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderEventsQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOrderEventsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderEventsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderEventsQueryIsNotConstructed)
}
