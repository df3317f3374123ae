// Package repomanager hands out repositories bound to a database handle or a
// transaction and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/events"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Events(db dbx.DBTX) events.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}
