package validation

import (
	"encoding/json"
	"errors"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

var (
	ErrInvalidUserPayload  = errors.New("invalid user payload")
	ErrInvalidBoardPayload = errors.New("invalid board payload")
)

func BuildCreateUserInput(req dto.CreateUserRequest) domain.CreateUserInput {
	input := domain.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     domain.RoleUser,
		Password: req.Password,
		Avatar:   req.Avatar,
	}
	if req.Role != nil {
		input.Role = domain.Role(*req.Role)
	}
	return input
}

func BuildUpdateUserInput(req dto.UpdateUserRequest, raw map[string]json.RawMessage) (domain.UpdateUserInput, error) {
	fields := []string{"email", "name", "role", "password", "avatar"}
	present := false
	for _, field := range fields {
		if !hasJSONField(raw, field) {
			continue
		}
		present = true
		if isJSONNull(raw[field]) {
			return domain.UpdateUserInput{}, ErrInvalidUserPayload
		}
	}
	if !present {
		return domain.UpdateUserInput{}, ErrInvalidUserPayload
	}

	input := domain.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Avatar:   req.Avatar,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}
	return input, nil
}

func BuildBoardPatch(req dto.UpdateBoardRequest, raw map[string]json.RawMessage) (domain.BoardPatch, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") {
		return domain.BoardPatch{}, ErrInvalidBoardPayload
	}
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.BoardPatch{}, ErrInvalidBoardPayload
	}
	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.BoardPatch{}, ErrInvalidBoardPayload
	}
	return domain.BoardPatch{Name: req.Name, Description: req.Description}, nil
}
