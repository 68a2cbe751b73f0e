package utils

import (
	"context"

	"medequip-system/pkg/contextkeys"
	apperrors "medequip-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

func GetUserRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return role, nil
}
