package postgres

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"sort"

	ierr "github.com/listingdesk/backoffice/internal/errors"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaFiles returns the schema scripts in the order they are applied
func SchemaFiles() ([]string, error) {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// WriteSchema prints every schema script to w without touching a database
func WriteSchema(w io.Writer) error {
	names, err := SchemaFiles()
	if err != nil {
		return err
	}
	for _, name := range names {
		script, err := schemaFS.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, "-- "+name+"\n"+string(script)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ApplySchema runs every schema script inside one transaction. The scripts
// are idempotent.
func (db *DB) ApplySchema(ctx context.Context) error {
	names, err := SchemaFiles()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to list schema scripts").
			Mark(ierr.ErrSystem)
	}

	return db.WithTx(ctx, func(ctx context.Context) error {
		for _, name := range names {
			script, err := schemaFS.ReadFile(name)
			if err != nil {
				return err
			}
			db.logger.Infow("applying schema script", "script", name)
			if _, err := db.GetQuerier(ctx).ExecContext(ctx, string(script)); err != nil {
				return ierr.WithError(err).
					WithHintf("Failed to apply %s", name).
					Mark(ierr.ErrDatabase)
			}
		}
		return nil
	})
}
