package database

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"cropguru/internal/domain/entities"
)

func scanSchemes(rows pgx.Rows) ([]entities.Scheme, error) {
	var out []entities.Scheme
	for rows.Next() {
		var s entities.Scheme
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Eligibility, &s.Link, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
