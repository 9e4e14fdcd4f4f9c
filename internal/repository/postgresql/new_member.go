package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffpoint/hr-backend-go/internal/domain/member"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
)

type newMemberRepositoryImpl struct {
	db *database.DB
}

func NewNewMemberRepository(db *database.DB) member.Repository {
	return &newMemberRepositoryImpl{db: db}
}

// Create implements member.Repository.
func (n *newMemberRepositoryImpl) Create(ctx context.Context, m *member.NewMember) error {
	q := GetQuerier(ctx, n.db)

	query := `
		INSERT INTO new_members (full_name, phone, chat_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, m.FullName, m.Phone, m.ChatID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return member.ErrPhoneAlreadyQueued
		}
		return fmt.Errorf("failed to create pending member: %w", err)
	}

	return nil
}

// GetByID implements member.Repository.
func (n *newMemberRepositoryImpl) GetByID(ctx context.Context, id string) (*member.NewMember, error) {
	q := GetQuerier(ctx, n.db)

	var m member.NewMember
	err := q.QueryRow(ctx,
		`SELECT id, full_name, phone, chat_id, created_at FROM new_members WHERE id = $1`, id,
	).Scan(&m.ID, &m.FullName, &m.Phone, &m.ChatID, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get pending member: %w", err)
	}

	return &m, nil
}

// GetByPhone implements member.Repository.
func (n *newMemberRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*member.NewMember, error) {
	q := GetQuerier(ctx, n.db)

	var m member.NewMember
	err := q.QueryRow(ctx,
		`SELECT id, full_name, phone, chat_id, created_at FROM new_members WHERE phone = $1`, phone,
	).Scan(&m.ID, &m.FullName, &m.Phone, &m.ChatID, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get pending member by phone: %w", err)
	}

	return &m, nil
}

// Delete implements member.Repository.
func (n *newMemberRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, n.db)

	tag, err := q.Exec(ctx, `DELETE FROM new_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pending member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}

	return nil
}

// List implements member.Repository.
func (n *newMemberRepositoryImpl) List(ctx context.Context) ([]member.NewMember, error) {
	q := GetQuerier(ctx, n.db)

	rows, err := q.Query(ctx,
		`SELECT id, full_name, phone, chat_id, created_at FROM new_members ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending members: %w", err)
	}
	defer rows.Close()

	var members []member.NewMember
	for rows.Next() {
		var m member.NewMember
		if err := rows.Scan(&m.ID, &m.FullName, &m.Phone, &m.ChatID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pending member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending members: %w", err)
	}

	return members, nil
}
