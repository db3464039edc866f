package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
	"github.com/mertc/coursehub/internal/pkg/dberrors"
	"github.com/mertc/coursehub/internal/pkg/logger"
)

// RoleRepository handles role database operations
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new role and returns its ID
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) (int64, error) {
	sql, args, err := r.sb.Insert("roles").
		Columns("name", "description").
		Values(role.Name, role.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create role query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrRoleNameTaken
		}
		logger.Error().Err(err).Msg("Error executing create role query")
		return 0, fmt.Errorf("error creating role: %w", err)
	}

	return id, nil
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("roles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get role query: %w", err)
	}

	role := &models.Role{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		logger.Error().Err(err).Int64("roleID", id).Msg("Error scanning role row")
		return nil, fmt.Errorf("error getting role by ID: %w", err)
	}

	return role, nil
}

// GetAll retrieves all roles ordered by ID
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("roles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all roles query")
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// NameExistsExcluding checks whether a role name is taken by any role other
// than the one identified by excludeID. Saving a role under its own name is
// therefore not a conflict.
func (r *RoleRepository) NameExistsExcluding(ctx context.Context, name string, excludeID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("roles").
		Where(squirrel.And{
			squirrel.Eq{"name": name},
			squirrel.NotEq{"id": excludeID},
		}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build role name exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("name", name).Msg("Error checking role name existence")
		return false, fmt.Errorf("error checking role name existence: %w", err)
	}

	return exists, nil
}

// Update updates a role's name and description
func (r *RoleRepository) Update(ctx context.Context, role *models.Role) error {
	sql, args, err := r.sb.Update("roles").
		SetMap(map[string]interface{}{
			"name":        role.Name,
			"description": role.Description,
		}).
		Where(squirrel.Eq{"id": role.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update role query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleNameTaken
		}
		logger.Error().Err(err).Int64("roleID", role.ID).Msg("Error executing update role query")
		return fmt.Errorf("error updating role: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}

// Delete deletes a role by ID
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("roles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete role query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoleInUse
		}
		logger.Error().Err(err).Int64("roleID", id).Msg("Error executing delete role query")
		return fmt.Errorf("error deleting role: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}
