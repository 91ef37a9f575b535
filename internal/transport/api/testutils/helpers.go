package testutils

import "strings"

// GenerateOverBytesUnderRunes строка из count рун, каждая занимает 4 байта. Подходит для проверки
// ограничений max_bytes, которые пропускает тэг max.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
