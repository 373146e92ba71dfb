package dataset

import (
	"fmt"
	"math/rand"

	"github.com/mhartleigh/paydeck/internal/model"
)

// demoSeed keeps generated data stable between runs so the demo UI and the
// seeded database agree.
const demoSeed = 420

var demoCustomers = []struct {
	name  string
	email string
}{
	{"Sarah Owen", "sarah.owen@example.com"},
	{"Wendy Lill", "wendy.lill@example.com"},
	{"Anna Kitching", "anna.kitching@example.com"},
	{"Oliver Payne", "oliver.payne@example.com"},
	{"James Mitchell", "james.mitchell@example.com"},
	{"Priya Shah", "priya.shah@example.com"},
	{"Tom Hargreaves", "tom.hargreaves@example.com"},
	{"Lucy Bennett", "lucy.bennett@example.com"},
	{"Marcus Webb", "marcus.webb@example.com"},
	{"Elena Kovacs", "elena.kovacs@example.com"},
}

var demoStatuses = []model.TransactionStatus{
	model.StatusCharged,
	model.StatusCharged,
	model.StatusCharged,
	model.StatusPaidIntoBank,
	model.StatusPaidIntoBank,
	model.StatusRefunded,
	model.StatusCancelled,
	model.StatusFailed,
}

var demoMonths = []string{"Sep", "Oct", "Nov", "Dec"}

// Demo generates a deterministic synthetic transaction collection of n
// records, mirroring the mock dataset the demo front end ships with.
func Demo(n int) []model.Transaction {
	rng := rand.New(rand.NewSource(demoSeed))

	txns := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		customer := demoCustomers[rng.Intn(len(demoCustomers))]
		status := demoStatuses[rng.Intn(len(demoStatuses))]

		amount := float64(rng.Intn(195000)+500) / 100 // £5.00 - £1,955.00
		var fee float64
		method := model.PaymentMethod{Type: model.MethodDirectDebit}
		switch rng.Intn(3) {
		case 0:
			method = model.PaymentMethod{Type: "Visa", Last4: fmt.Sprintf("%04d", rng.Intn(10000))}
			fee = roundPence(amount * 0.014)
		case 1:
			method = model.PaymentMethod{Type: "Mastercard", Last4: fmt.Sprintf("%04d", rng.Intn(10000))}
			fee = roundPence(amount * 0.014)
		}

		var notes string
		if status == model.StatusFailed && rng.Intn(2) == 0 {
			notes = "Card declined by issuer"
		}

		txns = append(txns, model.Transaction{
			ID:            fmt.Sprintf("txn_%04d", i+1),
			Reference:     fmt.Sprintf("INV-2025-%04d", 800+i),
			Notes:         notes,
			Status:        status,
			Customer:      customer.name,
			CustomerEmail: customer.email,
			Method:        method,
			Amount:        amount,
			Fee:           fee,
			Net:           roundPence(amount - fee),
			ChargedOn:     fmt.Sprintf("%02d %s 2025", rng.Intn(28)+1, demoMonths[rng.Intn(len(demoMonths))]),
		})
	}
	return txns
}

func roundPence(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
