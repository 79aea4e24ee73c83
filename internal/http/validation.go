package http

import (
	"regexp"
	"unicode/utf8"

	"team-roster-service/internal/service"
)

// Ограничения на название и тег команды
const (
	teamNameMinLen = 3
	teamNameMaxLen = 25
)

// Тег — 3-5 букв/цифр; регистр не важен, нормализация — на сервисном слое
var reTeamTag = regexp.MustCompile(`^[A-Za-z0-9]{3,5}$`)

// ValidateCreateTeamRequest — валидация тела запроса POST /teams
func ValidateCreateTeamRequest(req createTeamRequest) error {
	if req.Name == "" {
		return service.ErrBadRequest("name is required")
	}
	if n := utf8.RuneCountInString(req.Name); n < teamNameMinLen || n > teamNameMaxLen {
		return service.ErrBadRequest("name must be 3-25 characters long")
	}
	if req.Tag == "" {
		return service.ErrBadRequest("tag is required")
	}
	if !reTeamTag.MatchString(req.Tag) {
		return service.ErrBadRequest("tag must be 3-5 alphanumeric characters")
	}
	return nil
}

// ValidateTeamUpdateRequest — валидация тела запроса PATCH /teams/{teamID}.
// Поля опциональны, но присланные должны быть корректными.
func ValidateTeamUpdateRequest(name, tag *string) error {
	if name != nil {
		if n := utf8.RuneCountInString(*name); n < teamNameMinLen || n > teamNameMaxLen {
			return service.ErrBadRequest("name must be 3-25 characters long")
		}
	}
	if tag != nil && !reTeamTag.MatchString(*tag) {
		return service.ErrBadRequest("tag must be 3-5 alphanumeric characters")
	}
	return nil
}

// ValidateToken — валидация параметра пути {token}
func ValidateToken(token string) error {
	if token == "" {
		return service.ErrBadRequest("token is required")
	}
	return nil
}
