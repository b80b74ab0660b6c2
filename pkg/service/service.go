package service

import (
	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/auth"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/session"
)

// Deps are the collaborators shared by every service. They are built once
// at start-up and passed in explicitly.
type Deps struct {
	Backend  *api.Backend
	Composer *api.Composer
	Session  *session.Session
	Enricher *enrich.Enricher
	PageSize int
}

// Recovery returns the session checker for d
func (d Deps) Recovery() *auth.SessionRecovery {
	return auth.NewSessionRecovery(d.Session, d.Backend)
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
