package summarizing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/utils"
)

// CategoryStrategy define o destino das saídas sem categoria
type CategoryStrategy string

const (
	// CategorySkip omite do detalhamento as saídas sem categoria
	CategorySkip CategoryStrategy = config.CategoryStrategySkip
	// CategoryBucket agrupa as saídas sem categoria sob um rótulo próprio
	CategoryBucket CategoryStrategy = config.CategoryStrategyBucket

	DefaultUncategorizedLabel = "Uncategorized"
)

type options struct {
	strategy           CategoryStrategy
	uncategorizedLabel string
}

type Option func(*options)

func WithCategoryStrategy(strategy CategoryStrategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

func WithUncategorizedLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.uncategorizedLabel = label
		}
	}
}

// OptionsFromConfig traduz a configuração do dashboard em opções de agregação
func OptionsFromConfig(cfg config.Dashboard) []Option {
	return []Option{
		WithCategoryStrategy(CategoryStrategy(cfg.CategoryStrategy)),
		WithUncategorizedLabel(cfg.UncategorizedLabel),
	}
}

type categoryBucket struct {
	total decimal.Decimal
	count int
}

// Aggregate resume as saídas (amount < 0) do conjunto de despesas
func Aggregate(expenses []domain.Expense, opts ...Option) domain.Metrics {
	o := options{
		strategy:           CategorySkip,
		uncategorizedLabel: DefaultUncategorizedLabel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		total    = decimal.Zero
		highest  = decimal.Zero
		outflows int
		buckets  = make(map[string]*categoryBucket)
	)

	for _, expense := range expenses {
		if !expense.IsOutflow() {
			continue
		}

		absolute := expense.Amount.Abs()
		outflows++
		total = total.Add(absolute)
		if absolute.GreaterThan(highest) {
			highest = absolute
		}

		name := expense.Category
		if name == "" {
			if o.strategy != CategoryBucket {
				continue
			}
			name = o.uncategorizedLabel
		}

		bucket, ok := buckets[name]
		if !ok {
			bucket = &categoryBucket{total: decimal.Zero}
			buckets[name] = bucket
		}
		bucket.total = bucket.total.Add(absolute)
		bucket.count++
	}

	if outflows == 0 {
		return domain.EmptyMetrics()
	}

	return domain.Metrics{
		TotalExpenses:     utils.RoundToCents(total),
		AverageExpense:    utils.RoundToCents(total.Div(decimal.NewFromInt(int64(outflows)))),
		HighestExpense:    utils.RoundToCents(highest),
		TotalTransactions: outflows,
		Categories:        sortedCategories(buckets),
	}
}

// sortedCategories ordena por total decrescente e, em caso de empate, por nome
func sortedCategories(buckets map[string]*categoryBucket) []domain.CategoryTotal {
	type entry struct {
		name   string
		bucket *categoryBucket
	}

	entries := make([]entry, 0, len(buckets))
	for name, bucket := range buckets {
		entries = append(entries, entry{name: name, bucket: bucket})
	}

	sort.Slice(entries, func(i, j int) bool {
		if cmp := entries[i].bucket.total.Cmp(entries[j].bucket.total); cmp != 0 {
			return cmp > 0
		}
		return entries[i].name < entries[j].name
	})

	// cada categoria é arredondada sozinha: a soma delas pode se afastar do
	// total arredondado em até meio centavo por categoria
	categories := make([]domain.CategoryTotal, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, domain.CategoryTotal{
			Name:         e.name,
			Total:        utils.RoundToCents(e.bucket.total),
			Transactions: e.bucket.count,
		})
	}

	return categories
}
