package scoring

import "github.com/okian/weekender/internal/domain/model"

type budgetKey struct {
	budget model.PriceRange
	price  model.PriceRange
}

// budgetTable maps (profile budget, event price) to points. Exact matches
// earn 30 and the payoff decays with tier distance. Values are literal.
var budgetTable = map[budgetKey]int{
	{model.PriceFree, model.PriceFree}:   30,
	{model.PriceFree, model.PriceLow}:    20,
	{model.PriceFree, model.PriceMedium}: 10,
	{model.PriceFree, model.PriceHigh}:   5,

	{model.PriceLow, model.PriceFree}:   25,
	{model.PriceLow, model.PriceLow}:    30,
	{model.PriceLow, model.PriceMedium}: 20,
	{model.PriceLow, model.PriceHigh}:   10,

	{model.PriceMedium, model.PriceFree}:   15,
	{model.PriceMedium, model.PriceLow}:    25,
	{model.PriceMedium, model.PriceMedium}: 30,
	{model.PriceMedium, model.PriceHigh}:   20,

	{model.PriceHigh, model.PriceFree}:   10,
	{model.PriceHigh, model.PriceLow}:    15,
	{model.PriceHigh, model.PriceMedium}: 25,
	{model.PriceHigh, model.PriceHigh}:   30,
}

// BudgetAffinity returns the budget points for a (budget, price) pair.
// Pairs outside the table, including unknown tiers, score 0.
func BudgetAffinity(budget, price model.PriceRange) int {
	return budgetTable[budgetKey{budget: budget, price: price}]
}
