package postgres

import "github.com/Masterminds/squirrel"

// Builder is the statement builder shared by the repositories. PostgreSQL
// needs $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
