package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// invalidJSON es el código de Postgres para texto que no parsea como jsonb.
const invalidJSON = "22P02"

// mapPgError agrega el código SQLSTATE al mensaje cuando el error viene del servidor.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == invalidJSON {
			return fmt.Errorf("valor no es JSON válido (%s): %w", pgErr.Code, err)
		}
		return fmt.Errorf("postgres %s: %w", pgErr.Code, err)
	}
	return err
}
