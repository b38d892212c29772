package queries

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// MaxSearchTextLength bounds the free-text input of an order search.
const MaxSearchTextLength = 100

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery is the administrative order search. The text is matched
// literally; characters such as % or ' carry no special meaning.
type SearchOrdersQuery struct {
	text string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery trims text and rejects anything longer than
// MaxSearchTextLength characters. Empty text lists every order.
func NewSearchOrdersQuery(text string) (SearchOrdersQuery, error) {
	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n > MaxSearchTextLength {
		return SearchOrdersQuery{}, errs.NewValueIsOutOfRangeError("search text length", n, 0, MaxSearchTextLength)
	}
	return SearchOrdersQuery{text: text, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Text() string {
	return q.text
}
