package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"transaction-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CategorySalary        = "salary"
	CategoryTransfer      = "transfer"
	CategoryRefund        = "refund"
	CategoryAirtime       = "airtime"
	CategoryData          = "data"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryUtilities     = "utilities"
	CategoryShopping      = "shopping"
	CategoryEntertainment = "entertainment"
	CategoryPOS           = "pos"
	CategoryATM           = "atm_withdrawal"
	CategoryBankCharges   = "bank_charges"

	creditShare = 0.35
)

type categoryProfile struct {
	Category string
	Min      float64
	Max      float64
	Weight   int
}

var creditProfiles = []categoryProfile{
	{CategorySalary, 150000, 800000, 2},
	{CategoryTransfer, 5000, 200000, 6},
	{CategoryRefund, 1000, 50000, 1},
}

var debitProfiles = []categoryProfile{
	{CategoryTransfer, 2000, 150000, 6},
	{CategoryAirtime, 100, 5000, 4},
	{CategoryData, 500, 20000, 3},
	{CategoryFood, 1500, 30000, 5},
	{CategoryTransport, 500, 15000, 4},
	{CategoryUtilities, 5000, 60000, 2},
	{CategoryShopping, 3000, 120000, 3},
	{CategoryEntertainment, 2000, 25000, 2},
	{CategoryPOS, 1000, 50000, 4},
	{CategoryATM, 5000, 100000, 2},
	{CategoryBankCharges, 10, 100, 2},
}

var nigerianBanks = []string{
	"Access Bank",
	"GTBank",
	"First Bank",
	"Zenith Bank",
	"UBA",
	"Kuda",
	"Opay",
	"Moniepoint",
	"Wema Bank",
	"Stanbic IBTC",
	"Fidelity Bank",
	"Sterling Bank",
}

type transactionGenerator struct {
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a generator with a random seed.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(0),
	}
}

// NewSeededTransactionGenerator creates a generator that yields the same
// history for the same seed.
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateTransactions produces count transactions between startDate and
// endDate in date order. balance_after is a running balance starting from
// startingBalance and never goes negative: a debit that would overdraw the
// account is generated as an incoming transfer instead.
func (g *transactionGenerator) GenerateTransactions(accountID uuid.UUID, count int, startDate, endDate time.Time, startingBalance decimal.Decimal) []models.Transaction {
	if count <= 0 || !endDate.After(startDate) {
		return []models.Transaction{}
	}

	dates := g.generateDates(count, startDate, endDate)
	holderFirst, holderLast := g.faker.FirstName(), g.faker.LastName()
	connectionID := "mono_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]

	transactions := make([]models.Transaction, 0, count)
	balance := startingBalance
	for _, date := range dates {
		txnType, profile := g.pickProfile()
		amount := g.generateAmount(profile)

		if txnType == models.TransactionTypeDebit && balance.LessThan(amount) {
			txnType, profile = models.TransactionTypeCredit, creditProfiles[1]
			amount = g.generateAmount(profile)
		}

		if txnType == models.TransactionTypeCredit {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}

		transactions = append(transactions, models.Transaction{
			ID:               uuid.New(),
			TransactionID:    models.GenerateTransactionReference(),
			AccountID:        accountID,
			MonoConnectionID: connectionID,
			Amount:           amount,
			Currency:         models.DefaultCurrency,
			Date:             date,
			Narration:        g.generateNarration(txnType, profile.Category),
			Category:         profile.Category,
			TransactionType:  txnType,
			BankName:         g.faker.RandomString(nigerianBanks),
			AccountNumber:    g.faker.Numerify("##########"),
			FirstName:        holderFirst,
			LastName:         holderLast,
			BalanceAfter:     balance,
			CreatedAt:        date,
			UpdatedAt:        date,
		})
	}

	return transactions
}

func (g *transactionGenerator) generateDates(count int, startDate, endDate time.Time) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = g.faker.DateRange(startDate, endDate).UTC().Truncate(time.Second)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (g *transactionGenerator) pickProfile() (string, categoryProfile) {
	if g.faker.Float64Range(0, 1) < creditShare {
		return models.TransactionTypeCredit, g.weightedPick(creditProfiles)
	}
	return models.TransactionTypeDebit, g.weightedPick(debitProfiles)
}

func (g *transactionGenerator) weightedPick(profiles []categoryProfile) categoryProfile {
	total := 0
	for _, p := range profiles {
		total += p.Weight
	}

	roll := g.faker.Number(1, total)
	for _, p := range profiles {
		roll -= p.Weight
		if roll <= 0 {
			return p
		}
	}
	return profiles[len(profiles)-1]
}

func (g *transactionGenerator) generateAmount(profile categoryProfile) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(profile.Min, profile.Max)).Round(2)
}

func (g *transactionGenerator) generateNarration(txnType, category string) string {
	counterparty := strings.ToUpper(g.faker.FirstName() + " " + g.faker.LastName())

	switch category {
	case CategorySalary:
		return "Salary payment - " + g.faker.Company()
	case CategoryRefund:
		return "Refund - " + g.faker.Company()
	case CategoryTransfer:
		if txnType == models.TransactionTypeCredit {
			return "TRF FROM " + counterparty
		}
		return "TRF TO " + counterparty
	case CategoryAirtime:
		return "Airtime recharge " + g.faker.Numerify("080########")
	case CategoryData:
		return "Data bundle " + g.faker.Numerify("081########")
	case CategoryPOS:
		return "POS purchase at " + g.faker.Company()
	case CategoryATM:
		return fmt.Sprintf("ATM withdrawal %s", g.faker.City())
	case CategoryBankCharges:
		return "SMS alert charges"
	default:
		return strings.ToUpper(category[:1]) + category[1:] + " - " + g.faker.Company()
	}
}
