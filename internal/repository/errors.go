package repository

import "errors"

var (
	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrNameTaken возвращается при конфликте по названию команды.
	ErrNameTaken = errors.New("team name already taken")

	// ErrTagTaken возвращается при конфликте по тегу команды.
	ErrTagTaken = errors.New("team tag already taken")

	// ErrMembershipExists возвращается, если пользователь уже состоит в команде.
	ErrMembershipExists = errors.New("user is already a team member")

	// ErrTeamFull возвращается, если в ростере не осталось свободных мест.
	ErrTeamFull = errors.New("team roster is full")

	// ErrMembershipNotFound возвращается, если членство не найдено.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrInvitationNotFound возвращается, если нет pending-приглашения с таким токеном.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrInvitationConsumed возвращается, если приглашение уже перешло
	// в терминальный статус и условный переход не сработал.
	ErrInvitationConsumed = errors.New("invitation already consumed")

	// ErrNotificationNotFound возвращается, если уведомление не найдено.
	ErrNotificationNotFound = errors.New("notification not found")
)
