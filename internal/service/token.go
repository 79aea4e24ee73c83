package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// inviteTokenBytes — длина токена в байтах до кодирования.
// 128 бит энтропии делают перебор токена бессмысленным.
const inviteTokenBytes = 16

// newInviteToken генерирует криптографически стойкий URL-безопасный токен.
// Коллизии практически исключены, но уникальный индекс по token в БД
// остаётся страховкой.
func newInviteToken() (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
