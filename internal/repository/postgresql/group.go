package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
)

const groupColumns = `id, name, member_ids, created_at, updated_at`

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

func scanGroup(row pgx.Row) (group.Group, error) {
	var g group.Group
	var members []string
	err := row.Scan(&g.ID, &g.Name, &members, &g.CreatedAt, &g.UpdatedAt)
	g.Members = group.MemberSet(members)
	return g, err
}

// Create implements group.GroupRepository.
func (r *groupRepositoryImpl) Create(ctx context.Context, newGroup group.Group) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO groups (id, name, member_ids, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + groupColumns

	created, err := scanGroup(q.QueryRow(ctx, query,
		uuid.NewString(), newGroup.Name, []string(newGroup.Members),
	))
	if err != nil {
		if isUniqueViolation(err, "groups_name_key") {
			return group.Group{}, group.ErrNameExists
		}
		return group.Group{}, fmt.Errorf("insert group: %w", err)
	}
	return created, nil
}

// GetByID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("get group %s: %w", id, err)
	}
	return g, nil
}

// GetByIDForUpdate implements group.GroupRepository. Meant to run inside
// a transaction so the row lock spans the read-modify-write.
func (r *groupRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("get group %s for update: %w", id, err)
	}
	return g, nil
}

// GetAll implements group.GroupRepository.
func (r *groupRepositoryImpl) GetAll(ctx context.Context) ([]group.Group, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Update implements group.GroupRepository.
func (r *groupRepositoryImpl) Update(ctx context.Context, id string, req group.UpdateGroupRequest) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	var members *[]string
	if req.Members != nil {
		deduped := []string(group.NewMemberSet(*req.Members...))
		if deduped == nil {
			deduped = []string{}
		}
		members = &deduped
	}

	query := `
		UPDATE groups SET
			name = COALESCE($2, name),
			member_ids = COALESCE($3, member_ids),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + groupColumns

	updated, err := scanGroup(q.QueryRow(ctx, query, id, req.Name, members))
	if err != nil {
		switch {
		case err == pgx.ErrNoRows:
			return group.Group{}, group.ErrGroupNotFound
		case isUniqueViolation(err, "groups_name_key"):
			return group.Group{}, group.ErrNameExists
		}
		return group.Group{}, fmt.Errorf("update group %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements group.GroupRepository.
func (r *groupRepositoryImpl) Delete(ctx context.Context, id string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	deleted, err := scanGroup(q.QueryRow(ctx, `DELETE FROM groups WHERE id = $1 RETURNING `+groupColumns, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("delete group %s: %w", id, err)
	}
	return deleted, nil
}

// SetMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) SetMembers(ctx context.Context, id string, members group.MemberSet) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	ids := []string(members)
	if ids == nil {
		ids = []string{}
	}

	query := `
		UPDATE groups SET member_ids = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + groupColumns

	updated, err := scanGroup(q.QueryRow(ctx, query, id, ids))
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("set members of group %s: %w", id, err)
	}
	return updated, nil
}

// RemoveMemberEverywhere implements group.GroupRepository.
func (r *groupRepositoryImpl) RemoveMemberEverywhere(ctx context.Context, memberID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE groups SET member_ids = array_remove(member_ids, $1::uuid), updated_at = NOW()
		WHERE $1::uuid = ANY(member_ids)`

	if _, err := q.Exec(ctx, query, memberID); err != nil {
		return fmt.Errorf("remove member %s from all groups: %w", memberID, err)
	}
	return nil
}
