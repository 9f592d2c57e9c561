package gen

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	snakeRe = regexp.MustCompile(`_([a-z])`)
	upper   = cases.Upper(language.Und)
)

// Column name suffixes of columns that are never rendered.
const (
	translationSuffix = "_t"
	currencySuffix    = "_c"
)

// SnakeToCamel converts snake_case to camelCase. Only an underscore
// followed by a lowercase ASCII letter is folded: "order_status" becomes
// "orderStatus" while "line_2" is kept as is.
func SnakeToCamel(s string) string {
	return snakeRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Capitalize converts s to camelCase and uppercases its first letter.
func Capitalize(s string) string {
	s = SnakeToCamel(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ModelTypeName returns the model type name of a table. A single trailing
// "s" is removed, so "accounts" gives "AccountModel" and "address" gives
// "AddresModel".
func ModelTypeName(table string) string {
	return strings.TrimSuffix(Capitalize(table), "s") + "Model"
}

// TableTypeName returns the descriptor type name of a table.
func TableTypeName(table string) string {
	return ModelTypeName(table) + "Table"
}

// TableVarName returns the name of the descriptor variable of a table.
func TableVarName(table string) string {
	return strings.TrimSuffix(ModelTypeName(table), "Model") + "Table"
}

// DAOTypeName returns the data-access helper type name of a table.
func DAOTypeName(table string) string {
	return strings.TrimSuffix(ModelTypeName(table), "Model") + "DAO"
}

// EnumTypeName returns the Go type name of a database enum.
func EnumTypeName(enum string) string {
	return Capitalize(enum)
}

// FieldName returns the exported Go name of a column.
func FieldName(column string) string {
	return Capitalize(column)
}

// ForeignKeyPropertyName returns the property name of a foreign key
// column: "account_id" becomes "account".
func ForeignKeyPropertyName(column string) string {
	return SnakeToCamel(strings.TrimSuffix(column, "_id"))
}

// EnumConstName returns the constant name of an enum label:
// ("order_status", "in-transit") becomes "OrderStatus_IN_TRANSIT".
func EnumConstName(enum, value string) string {
	v := []rune(upper.String(value))
	for i, r := range v {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			v[i] = '_'
		}
	}
	return EnumTypeName(enum) + "_" + string(v)
}

// PackageName returns the Go package name of a package path: the last
// segment, lowercased. It falls back to DefaultPackage when no valid name
// remains.
func PackageName(path string) string {
	segs := packageSegments(path)
	if len(segs) == 0 {
		return DefaultPackage
	}
	name := strings.ToLower(segs[len(segs)-1])
	if !isIdent(name) {
		return DefaultPackage
	}
	return name
}

// IsExcluded reports whether a column is kept out of the rendered
// properties: the "id" primary key and translation or currency columns.
func IsExcluded(column string) bool {
	return column == "id" ||
		strings.HasSuffix(column, translationSuffix) ||
		strings.HasSuffix(column, currencySuffix)
}

func isIdent(s string) bool {
	if s == "" || token.IsKeyword(s) {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
