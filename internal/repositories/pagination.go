package repositories

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinSearchTermLength is the length a name filter must exceed before it is applied
const MinSearchTermLength = 3

var ErrInvalidPagination = errors.New("page and page size must be positive")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func validatePage(page, pageSize int) error {
	if page < 1 || pageSize < 1 {
		return ErrInvalidPagination
	}
	return nil
}

// searchTerm returns the trimmed term and whether it is long enough to filter on
func searchTerm(raw string) (string, bool) {
	term := strings.TrimSpace(raw)
	return term, utf8.RuneCountInString(term) > MinSearchTermLength
}

// containsPattern builds a substring pattern for use with ESCAPE '\'.
// Case folding is left to the database so both sides of the match fold alike.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// caseInsensitiveLike returns the operator that matches without regard to case:
// ILIKE on postgres, LIKE on sqlite where it already ignores ASCII case
func caseInsensitiveLike(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}
