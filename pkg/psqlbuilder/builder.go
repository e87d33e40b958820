package psqlbuilder

import "github.com/Masterminds/squirrel"

// psql squirrel builder с плейсхолдерами $1, $2, ... для PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return psql.Insert(into)
}

func Delete(from string) squirrel.DeleteBuilder {
	return psql.Delete(from)
}
