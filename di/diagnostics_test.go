package di_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/sghaida/codi/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticLog_Empty(t *testing.T) {
	t.Parallel()

	var log di.DiagnosticLog
	assert.Equal(t, 0, log.Len())
	assert.Nil(t, log.Entries())
	assert.Nil(t, log.Messages())
	assert.NoError(t, log.Err())
}

func TestDiagnosticLog_NilReceiverReads(t *testing.T) {
	t.Parallel()

	var log *di.DiagnosticLog
	assert.Equal(t, 0, log.Len())
	assert.Nil(t, log.Entries())
	assert.Nil(t, log.Messages())
	assert.NoError(t, log.Err())
}

func TestDiagnosticLog_AppendOrderPreserved(t *testing.T) {
	t.Parallel()

	var log di.DiagnosticLog
	log.Addf("first: %s", "a")
	log.Addf("second: %d", 2)

	require.Equal(t, 2, log.Len())
	assert.Equal(t, []string{"first: a", "second: 2"}, log.Messages())
}

func TestDiagnosticLog_EntriesCopy(t *testing.T) {
	t.Parallel()

	var log di.DiagnosticLog
	log.Addf("original")

	entries := log.Entries()
	require.Len(t, entries, 1)
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Entries()[0].Message)
}

func TestDiagnosticLog_ErrBatchesEverything(t *testing.T) {
	t.Parallel()

	var log di.DiagnosticLog
	log.Addf("contract mismatch on %s", "*store.UserStore")
	log.Addf("misplaced exposure")

	err := log.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 diagnostic(s)")

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryValidation, rich.Category)
	assert.Equal(t, "DI_CONFIG_INVALID", rich.TextCode)
}
