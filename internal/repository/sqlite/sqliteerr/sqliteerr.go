// Package sqliteerr inspects SQLite driver errors so repositories can
// report which column a unique-constraint violation hit.
package sqliteerr

import "strings"

const uniquePrefix = "UNIQUE constraint failed: "

// UniqueColumn extracts the violated column name from a SQLite
// unique-constraint error, e.g. "UNIQUE constraint failed: users.email"
// yields "email". The second return reports whether err was such an error.
func UniqueColumn(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	message := err.Error()
	idx := strings.Index(message, uniquePrefix)
	if idx == -1 {
		return "", false
	}

	column := message[idx+len(uniquePrefix):]
	if comma := strings.IndexByte(column, ','); comma != -1 {
		column = column[:comma]
	}
	if dot := strings.LastIndexByte(column, '.'); dot != -1 {
		column = column[dot+1:]
	}
	return strings.TrimSpace(column), true
}
