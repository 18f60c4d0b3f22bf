package converter

import (
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func SessionToUser(session *entity.Session) *dto.SessionUser {
	return &dto.SessionUser{
		Username: session.Username,
		Email:    session.Email,
	}
}
