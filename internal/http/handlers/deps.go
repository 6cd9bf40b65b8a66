package handlers

import (
	"sync"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/gateway"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/session"
)

// ExportHistoryReader is the read side of the export audit trail; the MySQL
// repository satisfies it, tests inject fakes.
type ExportHistoryReader interface {
	ListRecent(limit int) ([]models.ExportHistory, error)
	GetByID(id int64) (models.ExportHistory, error)
}

// Deps carries the long-lived collaborators handlers share. Configure is
// called once from the router; handlers read through the accessor so tests
// can swap stubs in.
type Deps struct {
	Sessions *session.Store
	Gateway  *gateway.Client
	Uploader *gateway.Uploader
	Lists    *services.ListService
	Exports  *services.ExportService
	History  ExportHistoryReader
}

var (
	depsMu sync.RWMutex
	deps   Deps

	jwtSecret []byte
)

// Configure wires handler dependencies from the environment. The JWT secret
// comes from the env layer, which owns the default.
func Configure(env intconfig.Env) {
	sessions := session.New(env.BackendToken)
	gw := gateway.New(env.BackendBaseURL, env.RequestTimeout, sessions)
	lists := &services.ListService{Gateway: gw, CacheTTL: env.ListCacheTTL}
	history := repositories.ExportHistoryRepo{}

	SetDeps(Deps{
		Sessions: sessions,
		Gateway:  gw,
		Uploader: gateway.NewUploader(env.UploadURL, env.UploadPreset, env.RequestTimeout),
		Lists:    lists,
		Exports: &services.ExportService{
			Lists:   lists,
			History: history,
		},
		History: history,
	})

	depsMu.Lock()
	jwtSecret = []byte(env.JWTSecret)
	depsMu.Unlock()
}

// SetDeps replaces the shared dependencies (tests use this directly).
func SetDeps(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// JWTSecret returns the operator token signing key.
func JWTSecret() []byte {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return jwtSecret
}
