package audit

import (
	"context"
	"sync"
	"time"

	"github.com/farmaciags/backend/internal/domain/audit"
	"github.com/farmaciags/backend/pkg/auth"
	"github.com/farmaciags/backend/pkg/logger"
)

// Recorder registra acciones de usuarios en la bitácora con semántica
// de mejor esfuerzo: la escritura se despacha en segundo plano y sus
// errores se registran en el log del operador y se descartan. Record no
// retorna nada, de modo que ningún llamador puede hacer depender el
// resultado de su petición de la bitácora.
type Recorder struct {
	repo   audit.Repository
	logger logger.Logger
	wg     sync.WaitGroup
}

// NewRecorder crea un registrador de bitácora
func NewRecorder(repo audit.Repository, logger logger.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

// Record agrega un registro a la bitácora para el usuario autenticado
// del contexto. Si no hay usuario autenticado no hace nada: las
// peticiones anónimas no generan bitácora. La inserción corre en una
// goroutine con contexto desacoplado para no demorar ni fallar la
// petición que la originó.
func (r *Recorder) Record(ctx context.Context, action, details string) {
	userID := userIDFrom(ctx)
	if userID == 0 {
		return
	}

	entry := &audit.Entry{
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := r.repo.Append(writeCtx, entry); err != nil {
			r.logger.Error("error al guardar en bitácora", "action", action, "user_id", userID, "error", err)
		}
	}()
}

// Flush espera a que terminen las escrituras en vuelo. Se usa al apagar
// el servidor y en las pruebas.
func (r *Recorder) Flush() {
	r.wg.Wait()
}

// userIDFrom extrae el ID del usuario autenticado del contexto,
// o cero si no hay ninguno
func userIDFrom(ctx context.Context) int64 {
	if id, ok := ctx.Value(auth.CtxUserID).(int64); ok {
		return id
	}
	return 0
}
