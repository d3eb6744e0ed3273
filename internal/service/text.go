package service

import "strings"

// storableText reports whether s can be kept in a postgres text column.
func storableText(s string) bool {
	return !strings.ContainsRune(s, 0)
}
