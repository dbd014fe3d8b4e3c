package core

// CategoryTotal is an amount aggregated under one category.
type CategoryTotal struct {
	Category string
	Total    Money
}

// Summary is the result of a summarize operation. ByCategory is only
// populated for grouped summaries and is ordered by total descending, then
// category name; categories without matching records are omitted.
type Summary struct {
	Total      Money
	ByCategory []CategoryTotal
}
