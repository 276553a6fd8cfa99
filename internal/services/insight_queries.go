package services

import (
	"fmt"
	"strings"
	"time"

	"transaction-insights/internal/models"

	"github.com/google/uuid"
)

// Every statement filters on account_id through the first bound argument.
// Filter values are always bound, never formatted into the SQL text.
const (
	creditSum = "SUM(CASE WHEN transaction_type ILIKE '%credit%' THEN amount ELSE 0 END)"
	debitSum  = "SUM(CASE WHEN transaction_type ILIKE '%debit%' THEN amount ELSE 0 END)"

	rowColumns  = `amount, currency, category, transaction_type, bank_name, "date"`
	newestFirst = `ORDER BY "date" DESC, created_at DESC`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func newQuery(name, sql string, accountID uuid.UUID, args ...interface{}) models.Query {
	return models.Query{
		Name: name,
		SQL:  strings.TrimSpace(sql),
		Args: append([]interface{}{accountID}, args...),
	}
}

func insightTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_recent_transactions",
			Description: "Get the 3 most recent transactions with amount, transaction type, category, bank name, balance after the transaction, currency and the sum of the 3 amounts.",
			Build:       buildRecentTransactions,
		},
		{
			Name:        "get_last_5_transactions",
			Description: "Get the 5 most recent transactions with date, narration, amount, currency, transaction type and category.",
			Build:       buildLastFiveTransactions,
		},
		{
			Name:        "get_current_balance",
			Description: "Get the current balance and currency from the most recent transaction.",
			Build:       buildCurrentBalance,
		},
		{
			Name:        "get_all_transactions",
			Description: "Get totals for all transactions (overall, credit and debit) in the dominant currency, plus the categories with the highest credit and debit amounts.",
			Build:       buildAllTransactions,
		},
		{
			Name:        "get_transactions_by_date",
			Description: "List transactions made on a specific date with amount, currency, category, transaction type and bank name.",
			Params: []ParamSpec{
				{Name: "date_str", Type: ParamString, Format: "date", Description: "Date in YYYY-MM-DD format."},
			},
			Build: buildTransactionsByDate,
		},
		{
			Name:        "get_transactions_between_dates",
			Description: "List transactions between two dates, both inclusive, with amount, currency, category, transaction type and bank name.",
			Params: []ParamSpec{
				{Name: "start_date", Type: ParamString, Format: "date", Description: "Start date in YYYY-MM-DD format."},
				{Name: "end_date", Type: ParamString, Format: "date", Description: "End date in YYYY-MM-DD format."},
			},
			Build: buildTransactionsBetweenDates,
		},
		{
			Name:        "get_transactions_last_month",
			Description: "Summarize the previous calendar month: total amount, total received (credits), total spent (debits) and the category with the highest spending.",
			Build:       buildTransactionsLastMonth,
		},
		{
			Name:        "get_transactions_over",
			Description: "List transactions with an amount greater than the given value.",
			Params: []ParamSpec{
				{Name: "amount", Type: ParamNumber, Description: "The minimum amount threshold (exclusive)."},
			},
			Build: amountComparison("get_transactions_over", ">"),
		},
		{
			Name:        "get_transactions_below",
			Description: "List transactions with an amount below the given value.",
			Params: []ParamSpec{
				{Name: "amount", Type: ParamNumber, Description: "The maximum amount threshold (exclusive)."},
			},
			Build: amountComparison("get_transactions_below", "<"),
		},
		{
			Name:        "get_transactions_by_exact_amount",
			Description: "List transactions with exactly the given amount.",
			Params: []ParamSpec{
				{Name: "amount", Type: ParamNumber, Description: "The exact transaction amount."},
			},
			Build: amountComparison("get_transactions_by_exact_amount", "="),
		},
		{
			Name:        "get_deposits",
			Description: "Get the total deposit (credit) amount and the category with the highest deposits.",
			Build:       flowTotals("get_deposits", "credit", "deposit", "deposits"),
		},
		{
			Name:        "get_withdrawals",
			Description: "Get the total withdrawal (debit) amount and the category with the highest withdrawals.",
			Build:       flowTotals("get_withdrawals", "debit", "withdrawal", "withdrawals"),
		},
		{
			Name:        "get_transactions_by_category",
			Description: "Get credit, debit and total amounts with currency for a transaction category.",
			Params: []ParamSpec{
				{Name: "category", Type: ParamString, Description: "The transaction category, e.g. transfer, airtime, salary."},
			},
			Build: textFilterSummary("get_transactions_by_category", "category", "category ILIKE ?", escapeLike),
		},
		{
			Name:        "get_transactions_by_narration_keyword",
			Description: "Get credit, debit and total amounts with currency for transactions whose narration contains a keyword.",
			Params: []ParamSpec{
				{Name: "keyword", Type: ParamString, Description: "Word or phrase to look for in the narration."},
			},
			Build: textFilterSummary("get_transactions_by_narration_keyword", "keyword", "narration ILIKE ?", containsPattern),
		},
		{
			Name:        "get_transactions_by_account_number",
			Description: "Get credit, debit and total amounts with currency for transactions with a counterparty account number.",
			Params: []ParamSpec{
				{Name: "account_number", Type: ParamString, Description: "The counterparty bank account number."},
			},
			Build: textFilterSummary("get_transactions_by_account_number", "account_number", "account_number = ?", nil),
		},
		{
			Name:        "get_transactions_by_bank_name",
			Description: "Get credit, debit and total amounts with currency for transactions from a bank.",
			Params: []ParamSpec{
				{Name: "bank_name", Type: ParamString, Description: "The bank name, e.g. Access Bank."},
			},
			Build: textFilterSummary("get_transactions_by_bank_name", "bank_name", "bank_name ILIKE ?", escapeLike),
		},
		{
			Name:        "get_transactions_by_account_id",
			Description: "Get credit, debit and total amounts with currency for the whole account.",
			Build:       buildTransactionsByAccountID,
		},
		{
			Name:        "get_transactions_by_mono_connection_id",
			Description: "Get credit, debit and total amounts with currency for transactions imported through a bank connection.",
			Params: []ParamSpec{
				{Name: "mono_connection_id", Type: ParamString, Description: "The bank connection identifier."},
			},
			Build: textFilterSummary("get_transactions_by_mono_connection_id", "mono_connection_id", "mono_connection_id = ?", nil),
		},
		{
			Name:        "get_transactions_by_currency",
			Description: "Get credit, debit and total amounts for transactions in a currency.",
			Params: []ParamSpec{
				{Name: "currency", Type: ParamString, Description: "ISO currency code, e.g. NGN or USD."},
			},
			Build: buildTransactionsByCurrency,
		},
		{
			Name:        "get_transaction_by_transaction_id",
			Description: "Get the details of one transaction by its transaction reference.",
			Params: []ParamSpec{
				{Name: "transaction_id", Type: ParamString, Description: "The transaction reference."},
			},
			Build: buildTransactionByTransactionID,
		},
		{
			Name:        "get_last_transaction_narration_and_amount",
			Description: "Get the narration, amount, currency and date of the most recent transaction.",
			Build:       buildLastTransactionNarration,
		},
		{
			Name:        "get_withdrawals_over_last_days",
			Description: "Summarize transactions above an amount within the last number of days: total, spent, received and the highest spending category.",
			Params: []ParamSpec{
				{Name: "amount", Type: ParamNumber, Description: "The minimum amount threshold (exclusive)."},
				{Name: "days", Type: ParamInteger, Description: "Number of past days to look back.", Default: 30},
			},
			Build: buildWithdrawalsOverLastDays,
		},
		{
			Name:        "get_transactions_by_bank_and_category",
			Description: "Summarize transactions from a bank in a category: total, spent and received.",
			Params: []ParamSpec{
				{Name: "bank_name", Type: ParamString, Description: "The bank name."},
				{Name: "category", Type: ParamString, Description: "The transaction category."},
			},
			Build: buildTransactionsByBankAndCategory,
		},
		{
			Name:        "get_transactions_between_amounts_and_category",
			Description: "Summarize transactions in a category with amounts in an inclusive range: total, spent, received and the highest spending category.",
			Params: []ParamSpec{
				{Name: "min_amount", Type: ParamNumber, Description: "The minimum amount (inclusive)."},
				{Name: "max_amount", Type: ParamNumber, Description: "The maximum amount (inclusive)."},
				{Name: "category", Type: ParamString, Description: "The transaction category."},
			},
			Build: buildTransactionsBetweenAmountsAndCategory,
		},
		{
			Name:        "get_transactions_updated_since",
			Description: "Summarize transactions updated since a point in time: total, spent, received and the highest spending category.",
			Params: []ParamSpec{
				{Name: "specific_date", Type: ParamString, Format: "date-time", Description: "Timestamp in YYYY-MM-DD HH:MM:SS format, or a date in YYYY-MM-DD format."},
			},
			Build: buildTransactionsUpdatedSince,
		},
		{
			Name:        "get_transactions_created_last_week",
			Description: "Summarize transactions created in the last 7 days: total, spent, received and the top spending category.",
			Build:       buildTransactionsCreatedLastWeek,
		},
		{
			Name:        "get_transactions_by_keyword",
			Description: "Get credit, debit and total amounts with currency for transactions whose bank name, category or transaction type contains a keyword.",
			Params: []ParamSpec{
				{Name: "keyword", Type: ParamString, Description: "Keyword to look for in bank name, category and transaction type."},
			},
			Build: buildTransactionsByKeyword,
		},
	}
}

func buildRecentTransactions(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return newQuery("get_recent_transactions", `
WITH recent AS (
	SELECT amount, transaction_type, category, bank_name, balance_after, currency, "date", created_at
	FROM transactions
	WHERE account_id = ?
	`+newestFirst+`
	LIMIT 3
)
SELECT amount, transaction_type, category, bank_name, balance_after, currency,
	(SELECT COALESCE(SUM(amount), 0) FROM recent) AS total_amount_of_3_transactions
FROM recent
`+newestFirst, accountID), nil
}

func buildLastFiveTransactions(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return newQuery("get_last_5_transactions", `
SELECT "date", narration, amount, currency, transaction_type, category
FROM transactions
WHERE account_id = ?
`+newestFirst+`
LIMIT 5`, accountID), nil
}

func buildCurrentBalance(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return newQuery("get_current_balance", `
SELECT balance_after, currency, "date"
FROM transactions
WHERE account_id = ?
`+newestFirst+`
LIMIT 1`, accountID), nil
}

func buildAllTransactions(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return newQuery("get_all_transactions", `
WITH scoped AS (
	SELECT * FROM transactions WHERE account_id = ?
),
highest_credit AS (
	SELECT category, SUM(amount) AS category_total, currency
	FROM scoped
	WHERE transaction_type ILIKE '%credit%'
	GROUP BY category, currency
	ORDER BY category_total DESC, category ASC
	LIMIT 1
),
highest_debit AS (
	SELECT category, SUM(amount) AS category_total, currency
	FROM scoped
	WHERE transaction_type ILIKE '%debit%'
	GROUP BY category, currency
	ORDER BY category_total DESC, category ASC
	LIMIT 1
),
totals AS (
	SELECT
		COALESCE(SUM(amount), 0) AS total_amount,
		COALESCE(`+creditSum+`, 0) AS total_credit,
		COALESCE(`+debitSum+`, 0) AS total_debit,
		currency
	FROM scoped
	GROUP BY currency
	ORDER BY total_amount DESC, currency ASC
	LIMIT 1
)
SELECT
	total_amount,
	total_credit,
	total_debit,
	currency,
	(SELECT category FROM highest_credit) AS highest_credit_category,
	(SELECT category_total FROM highest_credit) AS highest_credit_amount,
	(SELECT currency FROM highest_credit) AS highest_credit_currency,
	(SELECT category FROM highest_debit) AS highest_debit_category,
	(SELECT category_total FROM highest_debit) AS highest_debit_amount,
	(SELECT currency FROM highest_debit) AS highest_debit_currency
FROM totals`, accountID), nil
}

func rowList(name, filter string, accountID uuid.UUID, args ...interface{}) models.Query {
	return newQuery(name, `
SELECT `+rowColumns+`
FROM transactions
WHERE account_id = ?`+filter+`
`+newestFirst, accountID, args...)
}

func buildTransactionsByDate(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	day, err := args.Date("date_str")
	if err != nil {
		return models.Query{}, err
	}
	return rowList("get_transactions_by_date", ` AND "date" >= ? AND "date" < ?`,
		accountID, day, day.Add(24*time.Hour)), nil
}

func buildTransactionsBetweenDates(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	start, err := args.Date("start_date")
	if err != nil {
		return models.Query{}, err
	}
	end, err := args.Date("end_date")
	if err != nil {
		return models.Query{}, err
	}
	if end.Before(start) {
		return models.Query{}, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidArgument)
	}
	endOfDay := end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return rowList("get_transactions_between_dates", ` AND "date" BETWEEN ? AND ?`,
		accountID, start, endOfDay), nil
}

func amountComparison(name, operator string) QueryBuilder {
	filter := " AND amount " + operator + " ?"
	return func(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
		amount, err := args.Decimal("amount")
		if err != nil {
			return models.Query{}, err
		}
		return rowList(name, filter, accountID, amount), nil
	}
}

// flowTotals sums one transaction direction and picks its top category.
// Column names follow the direction's noun, e.g. total_deposits.
func flowTotals(name, direction, singular, plural string) QueryBuilder {
	typeFilter := "transaction_type ILIKE '%" + direction + "%'"
	sql := `
WITH scoped AS (
	SELECT * FROM transactions WHERE account_id = ? AND ` + typeFilter + `
),
top_category AS (
	SELECT category, SUM(amount) AS category_total, currency
	FROM scoped
	GROUP BY category, currency
	ORDER BY category_total DESC, category ASC
	LIMIT 1
),
dominant_currency AS (
	SELECT currency, SUM(amount) AS currency_total
	FROM scoped
	GROUP BY currency
	ORDER BY currency_total DESC, currency ASC
	LIMIT 1
)
SELECT
	COALESCE(SUM(amount), 0) AS total_` + plural + `,
	(SELECT currency FROM dominant_currency) AS total_` + plural + `_currency,
	(SELECT category FROM top_category) AS highest_` + singular + `_category,
	(SELECT category_total FROM top_category) AS highest_category_amount,
	(SELECT currency FROM top_category) AS highest_category_currency
FROM scoped`

	return func(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
		return newQuery(name, sql, accountID), nil
	}
}

func currencySummary(name, filter string, accountID uuid.UUID, args ...interface{}) models.Query {
	return newQuery(name, `
SELECT
	COALESCE(`+creditSum+`, 0) AS credit_amount,
	COALESCE(`+debitSum+`, 0) AS debit_amount,
	COALESCE(SUM(amount), 0) AS total_amount,
	currency
FROM transactions
WHERE account_id = ?`+filter+`
GROUP BY currency
ORDER BY total_amount DESC, currency ASC
LIMIT 1`, accountID, args...)
}

// textFilterSummary builds a currency summary filtered on one text argument.
// transform maps the argument to its bound value; nil binds it unchanged.
func textFilterSummary(name, param, condition string, transform func(string) string) QueryBuilder {
	filter := " AND " + condition
	return func(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
		value, err := args.String(param)
		if err != nil {
			return models.Query{}, err
		}
		if transform != nil {
			value = transform(value)
		}
		return currencySummary(name, filter, accountID, value), nil
	}
}

func buildTransactionsByAccountID(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return currencySummary("get_transactions_by_account_id", "", accountID), nil
}

func buildTransactionsByCurrency(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	currency, err := args.String("currency")
	if err != nil {
		return models.Query{}, err
	}
	return newQuery("get_transactions_by_currency", `
SELECT
	COALESCE(`+creditSum+`, 0) AS credit_amount,
	COALESCE(`+debitSum+`, 0) AS debit_amount,
	COALESCE(SUM(amount), 0) AS total_amount,
	MAX(currency) AS currency
FROM transactions
WHERE account_id = ? AND currency = ?`, accountID, strings.ToUpper(currency)), nil
}

func buildTransactionByTransactionID(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	transactionID, err := args.String("transaction_id")
	if err != nil {
		return models.Query{}, err
	}
	return newQuery("get_transaction_by_transaction_id", `
SELECT transaction_id, amount, currency, "date", narration, category, transaction_type,
	bank_name, account_number, balance_after
FROM transactions
WHERE account_id = ? AND transaction_id = ?
LIMIT 1`, accountID, transactionID), nil
}

func buildLastTransactionNarration(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return newQuery("get_last_transaction_narration_and_amount", `
SELECT narration, amount, currency, "date"
FROM transactions
WHERE account_id = ?
`+newestFirst+`
LIMIT 1`, accountID), nil
}

// periodSummary reports totals in the dominant currency of the filtered rows
// and the debit category with the highest spend. No matching rows yields no
// result row.
func periodSummary(name, filter string, withTopCategory bool, accountID uuid.UUID, args ...interface{}) models.Query {
	var b strings.Builder
	b.WriteString(`
WITH scoped AS (
	SELECT * FROM transactions WHERE account_id = ?` + filter + `
),`)
	if withTopCategory {
		b.WriteString(`
top_category AS (
	SELECT category, SUM(amount) AS category_total, currency
	FROM scoped
	WHERE transaction_type ILIKE '%debit%'
	GROUP BY category, currency
	ORDER BY category_total DESC, category ASC
	LIMIT 1
),`)
	}
	b.WriteString(`
totals AS (
	SELECT
		SUM(amount) AS total_sum,
		` + debitSum + ` AS total_spent,
		` + creditSum + ` AS total_received,
		currency
	FROM scoped
	GROUP BY currency
	ORDER BY total_sum DESC, currency ASC
	LIMIT 1
)
SELECT
	COALESCE(total_sum, 0) AS total_sum,
	COALESCE(total_spent, 0) AS total_spent,
	COALESCE(total_received, 0) AS total_received,
	currency`)
	if withTopCategory {
		b.WriteString(`,
	(SELECT category FROM top_category) AS highest_spend_category,
	(SELECT category_total FROM top_category) AS highest_spend_amount,
	(SELECT currency FROM top_category) AS highest_spend_currency`)
	}
	b.WriteString(`
FROM totals`)

	return newQuery(name, b.String(), accountID, args...)
}

func buildTransactionsLastMonth(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return periodSummary("get_transactions_last_month",
		` AND "date" >= date_trunc('month', CURRENT_DATE - INTERVAL '1 month') AND "date" < date_trunc('month', CURRENT_DATE)`,
		true, accountID), nil
}

func buildWithdrawalsOverLastDays(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	amount, err := args.Decimal("amount")
	if err != nil {
		return models.Query{}, err
	}
	days, err := args.Int("days")
	if err != nil {
		return models.Query{}, err
	}
	if days <= 0 {
		return models.Query{}, fmt.Errorf("%w: days must be positive", ErrInvalidArgument)
	}
	return periodSummary("get_withdrawals_over_last_days",
		` AND amount > ? AND "date" >= CURRENT_DATE - CAST(? AS INTEGER) * INTERVAL '1 day'`,
		true, accountID, amount, days), nil
}

func buildTransactionsByBankAndCategory(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	bankName, err := args.String("bank_name")
	if err != nil {
		return models.Query{}, err
	}
	category, err := args.String("category")
	if err != nil {
		return models.Query{}, err
	}
	return periodSummary("get_transactions_by_bank_and_category",
		` AND bank_name ILIKE ? AND category ILIKE ?`,
		false, accountID, escapeLike(bankName), escapeLike(category)), nil
}

func buildTransactionsBetweenAmountsAndCategory(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	minAmount, err := args.Decimal("min_amount")
	if err != nil {
		return models.Query{}, err
	}
	maxAmount, err := args.Decimal("max_amount")
	if err != nil {
		return models.Query{}, err
	}
	if minAmount.GreaterThan(maxAmount) {
		return models.Query{}, fmt.Errorf("%w: min_amount must not exceed max_amount", ErrInvalidArgument)
	}
	category, err := args.String("category")
	if err != nil {
		return models.Query{}, err
	}
	return periodSummary("get_transactions_between_amounts_and_category",
		` AND amount BETWEEN ? AND ? AND category ILIKE ?`,
		true, accountID, minAmount, maxAmount, escapeLike(category)), nil
}

func buildTransactionsUpdatedSince(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	since, err := args.Timestamp("specific_date")
	if err != nil {
		return models.Query{}, err
	}
	return newQuery("get_transactions_updated_since", `
WITH scoped AS (
	SELECT * FROM transactions WHERE account_id = ? AND updated_at >= ?
),
top_category AS (
	SELECT category, SUM(amount) AS category_total
	FROM scoped
	WHERE transaction_type ILIKE '%debit%'
	GROUP BY category
	ORDER BY category_total DESC, category ASC
	LIMIT 1
)
SELECT
	COALESCE(SUM(amount), 0) AS total_sum,
	COALESCE(`+debitSum+`, 0) AS total_spent,
	COALESCE(`+creditSum+`, 0) AS total_received,
	(SELECT category FROM top_category) AS highest_spend_category,
	(SELECT category_total FROM top_category) AS highest_spend_amount
FROM scoped`, accountID, since), nil
}

func buildTransactionsCreatedLastWeek(accountID uuid.UUID, _ ToolArguments) (models.Query, error) {
	return periodSummary("get_transactions_created_last_week",
		` AND created_at >= CURRENT_DATE - INTERVAL '7 days'`,
		true, accountID), nil
}

func buildTransactionsByKeyword(accountID uuid.UUID, args ToolArguments) (models.Query, error) {
	keyword, err := args.String("keyword")
	if err != nil {
		return models.Query{}, err
	}
	pattern := containsPattern(keyword)
	return currencySummary("get_transactions_by_keyword",
		` AND (bank_name ILIKE ? OR category ILIKE ? OR transaction_type ILIKE ?)`,
		accountID, pattern, pattern, pattern), nil
}
