package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает короткий уникальный ID вида "<prefix>_<16 hex>".
// Пустой префикс дает только hex-часть.
func GenerateID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	id := hex.EncodeToString(b)
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
