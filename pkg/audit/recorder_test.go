package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	auditdomain "github.com/farmaciags/backend/internal/domain/audit"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

// fakeAuditRepo cuenta las inserciones y puede simular fallos de almacenamiento
type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*auditdomain.Entry
	err     error
}

func (f *fakeAuditRepo) Append(_ context.Context, e *auditdomain.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, _ auditdomain.Filter, _, _ int) ([]*auditdomain.Entry, error) {
	return nil, nil
}

func (f *fakeAuditRepo) Count(_ context.Context, _ auditdomain.Filter) (int, error) {
	return 0, nil
}

func (f *fakeAuditRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func authedContext(userID int64) context.Context {
	return context.WithValue(context.Background(), auth.CtxUserID, userID) //nolint:staticcheck // gin expone las claims con claves string
}

func TestRecordWritesEntryForAuthenticatedUser(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := NewRecorder(repo, logger.NewLogger())

	rec.Record(authedContext(42), "Venta registrada", "Total: 60.00")
	rec.Flush()

	require.Equal(t, 1, repo.count())
	require.Equal(t, int64(42), repo.entries[0].UserID)
	require.Equal(t, "Venta registrada", repo.entries[0].Action)
	require.Equal(t, "Total: 60.00", repo.entries[0].Details)
}

func TestRecordNoOpsWithoutAuthenticatedUser(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := NewRecorder(repo, logger.NewLogger())

	// Sin usuario en el contexto no se escribe nada ni se produce error
	rec.Record(context.Background(), "Acción anónima", "")
	rec.Flush()

	require.Zero(t, repo.count())
}

func TestRecordSwallowsStorageErrors(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("disco lleno")}
	rec := NewRecorder(repo, logger.NewLogger())

	// El fallo de almacenamiento no se propaga: Record no retorna nada
	// y Flush termina sin pánico
	rec.Record(authedContext(7), "Cliente creado", "")
	rec.Flush()

	require.Zero(t, repo.count())
}

func TestRecordSurvivesCancelledRequestContext(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := NewRecorder(repo, logger.NewLogger())

	ctx, cancel := context.WithCancel(authedContext(9))
	cancel() // la petición ya terminó cuando corre la escritura

	rec.Record(ctx, "Reporte exportado", "")
	rec.Flush()

	require.Equal(t, 1, repo.count())
}
